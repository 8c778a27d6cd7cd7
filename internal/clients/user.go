package clients

import (
	"context"
	"fmt"
	"net/http"
)

// UserClient talks to the user service. baseURL includes the /user path
// prefix, e.g. http://user-service:8000/user.
type UserClient struct {
	baseURL string
	hc      *http.Client
}

func NewUserClient(baseURL string) *UserClient {
	return &UserClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
}

// Get fetches a user by id.
func (c *UserClient) Get(ctx context.Context, id int64) (User, error) {
	var u User
	err := do(ctx, c.hc, "User", http.MethodGet, fmt.Sprintf("%s/%d", c.baseURL, id), nil, &u)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// AppendOrder links an order id to the user's order list. The append is
// atomic on the user service side.
func (c *UserClient) AppendOrder(ctx context.Context, userID, orderID int64) error {
	return do(ctx, c.hc, "User", http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, userID), map[string]int64{"order_id": orderID}, nil)
}
