package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/httpclient"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

const defaultTimeout = 10 * time.Second

// Saver persists a refreshed configuration.
type Saver interface {
	SaveGlobal(ctx context.Context, cfg models.GlobalConfig) error
}

type (
	gitmojisResponse struct {
		Gitmojis *[]models.Gitmoji `json:"gitmojis"`
	}

	conventionalEmojiFields struct {
		Emoji       string  `json:"emoji"`
		Code        string  `json:"code"`
		Description *string `json:"description"`
	}

	conventionalTypesResponse struct {
		Types map[string]conventionalEmojiFields `json:"types"`
	}
)

// Updater downloads the catalog of the active specification and writes the
// refreshed configuration back through its Saver.
type Updater struct {
	client httpclient.HTTPClient
	saver  Saver
	now    func() time.Time
}

type Option func(*Updater)

func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(u *Updater) {
		u.client = client
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(u *Updater) {
		u.client = httpclient.New(timeout)
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Updater) {
		u.now = now
	}
}

func NewUpdater(saver Saver, opts ...Option) *Updater {
	u := &Updater{
		client: httpclient.New(defaultTimeout),
		saver:  saver,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Refresh fetches cfg.UpdateURL, replaces the catalog of cfg.Specification
// and persists the result. On failure the zero config is returned and
// nothing is written; cfg itself is never modified.
func (u *Updater) Refresh(ctx context.Context, cfg models.GlobalConfig) (models.GlobalConfig, error) {
	ctx = logger.With(ctx, "url", cfg.UpdateURL)

	body, err := u.fetch(ctx, cfg.UpdateURL)
	if err != nil {
		return models.GlobalConfig{}, err
	}

	var updated models.GlobalConfig
	switch cfg.Specification {
	case models.SpecificationDefault:
		gitmojis, err := parseGitmojis(body)
		if err != nil {
			return models.GlobalConfig{}, err
		}
		logger.Debug(ctx, "found gitmojis", "count", len(gitmojis))
		updated = cfg.WithGitmojis(gitmojis, u.now())
	case models.SpecificationConventionalEmojiCommits:
		emojis, err := parseConventionalEmojis(body)
		if err != nil {
			return models.GlobalConfig{}, err
		}
		logger.Debug(ctx, "found conventional emoji commits", "count", len(emojis))
		updated = cfg.WithConventionalEmojis(emojis, u.now())
	default:
		return models.GlobalConfig{}, errors.ErrUnknownSpecification.WithContext("specification", string(cfg.Specification))
	}

	if err := u.saver.SaveGlobal(ctx, updated); err != nil {
		return models.GlobalConfig{}, err
	}
	return updated, nil
}

func (u *Updater) fetch(ctx context.Context, url string) ([]byte, error) {
	logger.Info(ctx, "updating catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.ErrFetchCatalog.WithError(err).WithContext("url", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, errors.ErrFetchCatalog.WithError(err).WithContext("url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.ErrCatalogStatus.
			WithError(fmt.Errorf("status %d", resp.StatusCode)).
			WithContext("url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ErrFetchCatalog.WithError(err).WithContext("url", url)
	}
	return body, nil
}

func parseGitmojis(body []byte) ([]models.Gitmoji, error) {
	var resp gitmojisResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.ErrParseCatalog.WithError(err)
	}
	if resp.Gitmojis == nil {
		return nil, errors.ErrParseCatalog.WithError(fmt.Errorf("missing field `gitmojis`"))
	}
	return *resp.Gitmojis, nil
}

// parseConventionalEmojis flattens the type-keyed mapping. The mapping has no
// order, entries are sorted by type so the saved file stays stable.
func parseConventionalEmojis(body []byte) ([]models.ConventionalEmoji, error) {
	var resp conventionalTypesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.ErrParseCatalog.WithError(err)
	}
	if resp.Types == nil {
		return nil, errors.ErrParseCatalog.WithError(fmt.Errorf("missing field `types`"))
	}

	emojis := make([]models.ConventionalEmoji, 0, len(resp.Types))
	for commitType, fields := range resp.Types {
		emojis = append(emojis, models.NewConventionalEmoji(fields.Emoji, fields.Code, commitType, fields.Description))
	}
	sort.Slice(emojis, func(i, j int) bool {
		return emojis[i].Type < emojis[j].Type
	})
	return emojis, nil
}
