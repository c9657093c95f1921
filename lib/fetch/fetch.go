package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// StatusError reports a non-success HTTP response.
type StatusError struct {
	Url    string
	Status int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.Url, e.Status)
}

type Client struct {
	Http *resty.Client
}

func NewClient() Client {
	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)
	return Client{Http: client}
}

func (c Client) get(ctx context.Context, url string) (string, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	if res.IsError() {
		return "", StatusError{Url: url, Status: res.StatusCode()}
	}
	return string(res.Body()), nil
}

// Page fetches the raw markup of the target page. Failure here is
// fatal for the run.
func (c Client) Page(ctx context.Context, url string) (string, error) {
	return c.get(ctx, url)
}

// Resource fetches one external resource body. Callers tolerate
// failures from this method.
func (c Client) Resource(ctx context.Context, url string) (string, error) {
	return c.get(ctx, url)
}
