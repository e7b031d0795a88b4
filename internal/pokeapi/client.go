// Package pokeapi is a thin read-only client for the public PokéAPI. The
// provider paginates by offset/limit and has no substring search; lookup is
// by exact name or numeric id only.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("pokemon not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Pokemon is the trimmed-down detail shape the app cares about.
type Pokemon struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type ListItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ListResponse struct {
	Count   int        `json:"count"`
	Results []ListItem `json:"results"`
}

type detailResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

// ListPage fetches one offset/limit window of the full Pokémon index.
func (c *Client) ListPage(ctx context.Context, limit, offset int) (*ListResponse, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)

	var list ListResponse
	if err := c.getJSON(ctx, url, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetByName looks up a single Pokémon by exact name (or numeric id string).
// The name is lower-cased and trimmed before the call; a 404 maps to
// ErrNotFound.
func (c *Client) GetByName(ctx context.Context, name string) (*Pokemon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, name)

	var detail detailResponse
	if err := c.getJSON(ctx, url, &detail); err != nil {
		return nil, err
	}

	return &Pokemon{
		ID:       detail.ID,
		Name:     detail.Name,
		ImageURL: detail.Sprites.FrontDefault,
	}, nil
}

// Details resolves every list item to its detail record concurrently and
// returns them in list order.
func (c *Client) Details(ctx context.Context, items []ListItem) ([]Pokemon, error) {
	pokemons := make([]Pokemon, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			p, err := c.GetByName(ctx, name)
			if err != nil {
				errs[i] = fmt.Errorf("fetch %s: %w", name, err)
				return
			}
			pokemons[i] = *p
		}(i, item.Name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pokemons, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pokeapi: unexpected status %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
