// Package tokenledger burns gating tokens through the fungible token ledger service.
package tokenledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/httpclient"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
)

var _ datagateway.FungibleLedger = (*Client)(nil)

type Client struct {
	httpClient *httpclient.Client
}

func New(baseURL string, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "token ledger url is required")
	}
	headers := map[string]string{}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}
	httpClient, err := httpclient.New(baseURL, httpclient.Config{Headers: headers})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{httpClient: httpClient}, nil
}

type burnRequest struct {
	Owner  entity.Pubkey `json:"owner"`
	Amount uint64        `json:"amount,string"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) Debit(ctx context.Context, tokenID, owner entity.Pubkey, amount uint64) error {
	body, err := json.Marshal(burnRequest{Owner: owner, Amount: amount})
	if err != nil {
		return errors.Wrap(err, "can't marshal payload")
	}
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/v1/tokens/%s/burn", tokenID), httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return errors.Wrap(errors.Mark(err, errs.Unavailable), "can't send request")
	}

	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		logger.DebugContext(ctx, "gating tokens burned",
			slogx.Stringer("tokenId", tokenID),
			slogx.Stringer("owner", owner),
			slogx.Uint64("amount", amount),
		)
		return nil
	}

	var reason errorResponse
	_ = json.Unmarshal(resp.Body(), &reason)
	switch {
	case status == http.StatusPaymentRequired, status == http.StatusConflict:
		return errors.Wrapf(errs.InsufficientBalance, "owner %s cannot burn %d: %s", owner, amount, reason.Error)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return errors.Wrapf(errs.Unauthorized, "owner %s did not authorize the burn: %s", owner, reason.Error)
	case status == http.StatusNotFound:
		return errors.Wrapf(errs.NotFound, "token %s", tokenID)
	case status >= http.StatusInternalServerError:
		return errors.Wrapf(errs.Unavailable, "token ledger responded %d", status)
	default:
		return errors.Errorf("token ledger responded %d: %s", status, resp.Body())
	}
}
