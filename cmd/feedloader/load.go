package main

import (
	"context"
	"encoding/json"
	"fmt"

	"feedloader/core/domain"
	"feedloader/feedlib"
	"golang.org/x/sync/errgroup"
)

// LoadCmd loads each feed once
type LoadCmd struct {
	URLs []string `arg:"" optional:"" name:"url" help:"Feeds to load. Defaults to FEEDLOADER_URL."`
}

// feedOutput is the printed result for one feed
type feedOutput struct {
	URL   string       `json:"url"`
	Items []itemOutput `json:"items,omitempty"`
	Error string       `json:"error,omitempty"`
}

// itemOutput mirrors the wire schema of an item
type itemOutput struct {
	ID          string  `json:"id"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    string  `json:"image_url"`
}

func (c *LoadCmd) Run(rt *runtime) error {
	return c.run(context.Background(), rt)
}

func (c *LoadCmd) run(ctx context.Context, rt *runtime) error {
	urls := c.URLs
	if len(urls) == 0 {
		urls = []string{rt.cfg.URL}
	}

	outputs := make([]feedOutput, len(urls))
	var g errgroup.Group
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			outputs[i] = loadOne(ctx, rt, url)
			return nil
		})
	}
	_ = g.Wait()

	enc := json.NewEncoder(rt.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outputs); err != nil {
		return err
	}

	failed := 0
	for _, out := range outputs {
		if out.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d feeds failed to load", failed, len(urls))
	}
	return nil
}

func loadOne(ctx context.Context, rt *runtime, url string) feedOutput {
	out := feedOutput{URL: url}

	loader, err := rt.newLoader(url, nil)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	defer loader.Close()

	items, err := feedlib.Load(ctx, loader)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Items = toOutput(items)
	rt.logger.Info("Feed loaded", map[string]interface{}{
		"url":   url,
		"items": len(items),
	})
	return out
}

func toOutput(items []domain.FeedItem) []itemOutput {
	out := make([]itemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, itemOutput{
			ID:          item.ID.String(),
			Description: item.Description,
			Location:    item.Location,
			ImageURL:    item.ImageURL.String(),
		})
	}
	return out
}
