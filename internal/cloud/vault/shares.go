package vault

import (
	"net/http"

	"github.com/deomiarn/securevault/internal/utils/api"
)

const (
	sharesPathPattern = secretPathPattern + "/shares"
	sharePathPattern  = sharesPathPattern + "/%s"
	sharedWithMePath  = "/shared-with-me"
)

// Share grants another user access to a secret
type Share struct {
	ID               string     `json:"id"`
	SecretID         string     `json:"secretId"`
	SecretName       string     `json:"secretName"`
	SharedWithUserID string     `json:"sharedWithUserId"`
	Permission       Permission `json:"permission"`
	SharedByUserID   string     `json:"sharedByUserId"`
	CreatedAt        string     `json:"createdAt"`
}

// ShareRequest is the payload to share a secret
type ShareRequest struct {
	SharedWithUserID string     `json:"sharedWithUserId"`
	Permission       Permission `json:"permission"`
}

func (c *client) ShareSecret(secretID string, payload ShareRequest) (Share, error) {
	res, err := c.doJSON(http.MethodPost, api.PathEscape(sharesPathPattern, secretID), payload, api.RequestOptions{})
	if err != nil {
		return Share{}, err
	}

	var share Share
	if err := decodeJSON(res, &share); err != nil {
		return Share{}, err
	}
	return share, nil
}

func (c *client) Shares(secretID string) ([]Share, error) {
	return c.findShares(api.PathEscape(sharesPathPattern, secretID))
}

func (c *client) SharedWithMe() ([]Share, error) {
	return c.findShares(sharedWithMePath)
}

func (c *client) findShares(path string) ([]Share, error) {
	res, err := c.do(http.MethodGet, path, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var shares []Share
	if err := decodeJSON(res, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

func (c *client) UpdateSharePermission(secretID, shareID string, permission Permission) (Share, error) {
	res, err := c.do(
		http.MethodPut,
		api.PathEscape(sharePathPattern, secretID, shareID),
		api.RequestOptions{Query: map[string]string{"permission": permission.String()}},
	)
	if err != nil {
		return Share{}, err
	}

	var share Share
	if err := decodeJSON(res, &share); err != nil {
		return Share{}, err
	}
	return share, nil
}

func (c *client) RevokeShare(secretID, shareID string) error {
	res, err := c.do(http.MethodDelete, api.PathEscape(sharePathPattern, secretID, shareID), api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}
