package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// restClient speaks a PostgREST-style JSON API: /rest/v1/<table> with
// eq. filters, /rest/v1/rpc/<procedure> for stored procedures. Row-level
// security on the server scopes everything to the bearer token.
type restClient struct {
	base   string
	apiKey string
	token  string
	httpc  *http.Client
}

func NewREST(base, apiKey, token string) Client {
	return &restClient{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		token:  token,
		httpc:  &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *restClient) do(ctx context.Context, method, path string, q url.Values, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("remote %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(out)))
	}
	return out, nil
}

func (c *restClient) Query(ctx context.Context, table string, filter Filter, order string) ([]Row, error) {
	q := url.Values{}
	for col, v := range filter {
		q.Set(col, fmt.Sprintf("eq.%v", v))
	}
	if order != "" {
		q.Set("order", order)
	}
	out, err := c.do(ctx, http.MethodGet, "/rest/v1/"+table, q, nil)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(out, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	return rows, nil
}

func (c *restClient) Insert(ctx context.Context, table string, row Row) (Row, error) {
	out, err := c.do(ctx, http.MethodPost, "/rest/v1/"+table, nil, row)
	if err != nil {
		return nil, err
	}
	return oneRow(table, out)
}

func (c *restClient) Update(ctx context.Context, table, id string, patch Row) (Row, error) {
	q := url.Values{}
	q.Set("id", "eq."+id)
	out, err := c.do(ctx, http.MethodPatch, "/rest/v1/"+table, q, patch)
	if err != nil {
		return nil, err
	}
	return oneRow(table, out)
}

func (c *restClient) Delete(ctx context.Context, table, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	_, err := c.do(ctx, http.MethodDelete, "/rest/v1/"+table, q, nil)
	return err
}

func (c *restClient) Call(ctx context.Context, procedure string, args Row) (any, error) {
	out, err := c.do(ctx, http.MethodPost, "/rest/v1/rpc/"+procedure, nil, args)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	var res any
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("decode rpc %s: %w", procedure, err)
	}
	return res, nil
}

// CurrentUser reads the subject claim out of the access token locally.
// The signature is the server's business; row-level security rejects a
// forged token on the first real call anyway.
func (c *restClient) CurrentUser() (string, error) {
	if c.token == "" {
		return "", ErrNoSession
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(c.token, claims); err != nil {
		return "", ErrNoSession
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrNoSession
	}
	return sub, nil
}

func oneRow(table string, out []byte) (Row, error) {
	// representation responses come back as a one-element array
	var rows []Row
	if err := json.Unmarshal(out, &rows); err != nil {
		var row Row
		if err2 := json.Unmarshal(out, &row); err2 == nil {
			return row, nil
		}
		return nil, fmt.Errorf("decode %s row: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}
