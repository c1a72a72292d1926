package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"defisalary/types"
)

// PriceFeed reports the native-asset/USD price with 8 decimal places, the
// precision Chainlink-style aggregators use.
type PriceFeed interface {
	LatestAnswer(ctx context.Context) (*big.Int, error)
}

var (
	// feed answers carry 8 decimals, prices are normalized to 18
	feedScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(10), nil)
	usdScale  = new(big.Int).Exp(big.NewInt(10), big.NewInt(36), nil)
)

// Oracle normalizes the raw feed into an 18-decimal price and converts
// whole-dollar USD amounts into wei.
type Oracle struct {
	feed PriceFeed
}

func NewOracle(feed PriceFeed) *Oracle {
	return &Oracle{feed: feed}
}

// LatestPrice returns the price of one native unit in USD with 18 decimals.
// A feed error or a non-positive answer maps to ErrOracleUnavailable.
func (o *Oracle) LatestPrice(ctx context.Context) (*big.Int, error) {
	answer, err := o.feed.LatestAnswer(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrOracleUnavailable, err)
	}
	if answer == nil || answer.Sign() <= 0 {
		return nil, types.ErrOracleUnavailable
	}
	return new(big.Int).Mul(answer, feedScale), nil
}

// Convert computes the wei amount worth usdAmount dollars at the latest
// price: usd * 10^36 / price18, truncating. At $2000/unit, Convert(1000)
// yields exactly 0.5 * 10^18.
func (o *Oracle) Convert(ctx context.Context, usdAmount uint64) (*big.Int, error) {
	price, err := o.LatestPrice(ctx)
	if err != nil {
		return nil, err
	}
	wei := new(big.Int).SetUint64(usdAmount)
	wei.Mul(wei, usdScale)
	return wei.Quo(wei, price), nil
}

// FeedClient reads a JSON price endpoint over HTTP. The endpoint is expected
// to answer {"answer":"<8-decimal integer>"}.
type FeedClient struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

func NewFeedClient(endpoint string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		client:   &http.Client{},
		endpoint: endpoint,
		timeout:  timeout,
	}
}

func (f *FeedClient) LatestAnswer(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach price feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price feed returned status %d", resp.StatusCode)
	}

	var payload struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	answer, ok := new(big.Int).SetString(payload.Answer, 10)
	if !ok {
		return nil, fmt.Errorf("feed answer %q is not an integer", payload.Answer)
	}
	return answer, nil
}

// StaticFeed is an in-process feed with a settable answer, the moral
// equivalent of a MockV3Aggregator. Used by tests and local runs.
type StaticFeed struct {
	mu     sync.RWMutex
	answer *big.Int
	err    error
}

func NewStaticFeed(answer *big.Int) *StaticFeed {
	return &StaticFeed{answer: answer}
}

func (s *StaticFeed) LatestAnswer(context.Context) (*big.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.answer == nil {
		return nil, nil
	}
	return new(big.Int).Set(s.answer), nil
}

func (s *StaticFeed) SetAnswer(answer *big.Int) {
	s.mu.Lock()
	s.answer = answer
	s.err = nil
	s.mu.Unlock()
}

func (s *StaticFeed) Fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
