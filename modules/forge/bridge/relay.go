// Package bridge hands committed bridge dispatches to the cross-chain relay.
package bridge

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/internal/entity"
	"github.com/gaze-network/orb-forge/pkg/httpclient"
)

var _ datagateway.BridgeRelay = (*RelayClient)(nil)

type RelayClient struct {
	httpClient *httpclient.Client
}

func NewRelayClient(baseURL string, apiKey string) (*RelayClient, error) {
	if baseURL == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "bridge relay url is required")
	}
	headers := map[string]string{}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}
	httpClient, err := httpclient.New(baseURL, httpclient.Config{Headers: headers})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &RelayClient{httpClient: httpClient}, nil
}

type submitMessageRequest struct {
	ID           string         `json:"id"`
	BridgeTarget entity.Pubkey  `json:"bridgeTarget"`
	TargetChain  common.ChainID `json:"targetChain"`
	Payload      string         `json:"payload"`
}

// Submit posts the dispatch payload to the relay. The dispatch id makes the call idempotent,
// so a relay that already knows the message answers 409 and that counts as delivered.
func (c *RelayClient) Submit(ctx context.Context, dispatch *entity.Dispatch) error {
	payload, err := dispatch.Payload.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "can't encode bridge payload")
	}
	body, err := json.Marshal(submitMessageRequest{
		ID:           dispatch.ID.String(),
		BridgeTarget: dispatch.BridgeTarget,
		TargetChain:  dispatch.Payload.TargetChain,
		Payload:      hex.EncodeToString(payload),
	})
	if err != nil {
		return errors.Wrap(err, "can't marshal payload")
	}

	resp, err := c.httpClient.Post(ctx, "/v1/messages", httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return errors.Wrap(errors.Mark(err, errs.Unavailable), "can't send request")
	}

	switch status := resp.StatusCode(); {
	case status >= http.StatusOK && status < http.StatusMultipleChoices, status == http.StatusConflict:
		return nil
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return errors.Wrapf(errs.Unavailable, "relay responded %d", status)
	default:
		return errors.Errorf("relay rejected dispatch %s with %d: %s", dispatch.ID, status, resp.Body())
	}
}

// isRetryable reports whether a failed submission may succeed later.
func isRetryable(err error) bool {
	return errors.Is(err, errs.Unavailable) || errors.Is(err, errs.Timeout)
}
