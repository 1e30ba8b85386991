// Package api talks to the tax authority endpoint. Every interface goes
// through the same URL as an HTTP POST of one envelope; the interfaceCode
// inside globalInfo selects the operation server side.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/alapierre/go-efris-client/efris"
	"github.com/alapierre/go-efris-client/efris/model"
	"github.com/alapierre/go-efris-client/efris/util"
)

type Client interface {
	PostEnvelope(ctx context.Context, env *model.Envelope) (*model.Envelope, error)
}

type client struct {
	rest        *resty.Client
	environment efris.Environment
}

func New(environment efris.Environment) Client {
	restyClient := resty.New()
	return &client{rest: restyClient, environment: environment}
}

func (c *client) PostEnvelope(ctx context.Context, env *model.Envelope) (*model.Envelope, error) {

	r := c.rest.R().SetContext(ctx)
	if util.DebugEnabled() {
		r.EnableTrace()
	}

	result := &model.Envelope{}
	resp, err := r.
		SetBody(env).
		SetResult(result).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		Post(c.environment.BaseURL())

	printTraceInfo(c, err, resp)
	if err := checkError(resp, err); err != nil {
		return nil, err
	}
	return result, nil
}

func checkError(resp *resty.Response, err error) error {
	if resp != nil && resp.IsError() {

		body := resp.String()
		var errorMap map[string]any
		if body != "" {
			_ = json.Unmarshal([]byte(body), &errorMap)
		}

		return &RequestError{
			StatusCode:   resp.StatusCode(),
			Err:          err,
			Body:         body,
			ErrorDetails: errorMap,
		}
	}
	return err
}

func printTraceInfo(c *client, err error, resp *resty.Response) {

	if !util.HttpTraceEnabled() || resp == nil {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  URL        :", c.environment.BaseURL())
	fmt.Println("  Error      :", err)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())

	ti := resp.Request.TraceInfo()
	fmt.Println("Request Trace Info:")
	fmt.Println("  DNSLookup     :", ti.DNSLookup)
	fmt.Println("  ConnTime      :", ti.ConnTime)
	fmt.Println("  TCPConnTime   :", ti.TCPConnTime)
	fmt.Println("  TLSHandshake  :", ti.TLSHandshake)
	fmt.Println("  ServerTime    :", ti.ServerTime)
	fmt.Println("  ResponseTime  :", ti.ResponseTime)
	fmt.Println("  TotalTime     :", ti.TotalTime)
	fmt.Println()
}
