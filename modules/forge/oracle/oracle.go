// Package oracle talks to the authenticity oracle that binds assets to their metadata.
package oracle

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/httpclient"
)

var _ datagateway.AuthenticityOracle = (*Client)(nil)

type Client struct {
	httpClient *httpclient.Client
}

func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "oracle url is required")
	}
	httpClient, err := httpclient.New(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{httpClient: httpClient}, nil
}

type metadataResponse struct {
	MetadataRef entity.Pubkey `json:"metadataRef"`
}

func (c *Client) Verify(ctx context.Context, assetID entity.Pubkey) (entity.Pubkey, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/assets/%s/metadata", assetID), httpclient.RequestOptions{})
	if err != nil {
		return entity.Pubkey{}, errors.Wrap(errors.Mark(err, errs.Unavailable), "can't send request")
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusOK:
	case status == http.StatusNotFound:
		return entity.Pubkey{}, errors.Wrapf(errs.NotFound, "asset %s", assetID)
	case status >= http.StatusInternalServerError:
		return entity.Pubkey{}, errors.Wrapf(errs.Unavailable, "oracle responded %d", status)
	default:
		return entity.Pubkey{}, errors.Errorf("oracle responded %d: %s", status, resp.Body())
	}

	var body metadataResponse
	if err := resp.UnmarshalBody(&body); err != nil {
		return entity.Pubkey{}, errors.Wrap(err, "can't decode oracle response")
	}
	if body.MetadataRef.IsZero() {
		return entity.Pubkey{}, errors.Wrapf(errs.NotFound, "asset %s has an empty metadata reference", assetID)
	}
	return body.MetadataRef, nil
}
