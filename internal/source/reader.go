package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/UnknownOlympus/hermes/internal/metrics"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/internal/repository"
	"github.com/spf13/afero"
)

// Errors reported by Read. ReadCustomerFile absorbs both.
var (
	ErrSourceUnavailable = errors.New("customer source unavailable")
	ErrMalformedRecord   = errors.New("malformed customer record")
)

// DefaultTimeout bounds network backed reads when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dialer opens a database for a postgres locator.
type Dialer func(ctx context.Context, dsn string) (repository.Database, error)

// Config holds the collaborators of a Reader. Zero fields get defaults.
type Config struct {
	Fs         afero.Fs         // Fs serves plain path locators; defaults to the OS file system.
	HTTPClient HTTPClient       // HTTPClient serves http(s) locators.
	Dial       Dialer           // Dial serves postgres locators; defaults to repository.NewDatabase.
	Table      string           // Table holds the customers for postgres locators.
	Timeout    time.Duration    // Timeout bounds network backed reads.
	Logger     *slog.Logger     // Logger receives the diagnostics of absorbed failures.
	Metrics    *metrics.Metrics // Metrics, when set, counts absorbed failures.
}

// Reader loads customer records from a locator. A locator is a file path, a file://,
// http:// or https:// URL, or a postgres:// connection string.
type Reader struct {
	fs      afero.Fs
	client  HTTPClient
	dial    Dialer
	table   string
	timeout time.Duration
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewReader creates a Reader, filling unset Config fields with defaults.
func NewReader(cfg Config) *Reader {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Dial == nil {
		cfg.Dial = repository.NewDatabase
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Reader{
		fs:      cfg.Fs,
		client:  cfg.HTTPClient,
		dial:    cfg.Dial,
		table:   cfg.Table,
		timeout: cfg.Timeout,
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// ReadCustomerFile returns the records behind locator. Any failure is logged and
// degrades to an empty slice; it never returns nil.
func (r *Reader) ReadCustomerFile(ctx context.Context, locator string) []models.Record {
	records, err := r.Read(ctx, locator)
	if err != nil {
		r.log.ErrorContext(ctx, "Error accessing customer file", "locator", redact(locator), "error", err)
		r.countFailure(err)
		return []models.Record{}
	}

	return records
}

// Read returns the records behind locator or an error wrapping ErrSourceUnavailable
// or ErrMalformedRecord.
func (r *Reader) Read(ctx context.Context, locator string) ([]models.Record, error) {
	switch {
	case hasScheme(locator, "postgres", "postgresql"):
		return r.readPostgres(ctx, locator)
	case hasScheme(locator, "http", "https"):
		content, err := r.fetchHTTP(ctx, locator)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return ParseRecords(content)
	default:
		content, err := afero.ReadFile(r.fs, strings.TrimPrefix(locator, "file://"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return ParseRecords(string(content))
	}
}

func (r *Reader) fetchHTTP(ctx context.Context, locator string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/x-ndjson, application/json, text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute customers request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("customers endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func (r *Reader) readPostgres(ctx context.Context, dsn string) ([]models.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	dtb, err := r.dial(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer dtb.Close()

	records, err := repository.NewRepository(dtb, r.table, r.log).FetchCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return records, nil
}

func (r *Reader) countFailure(err error) {
	if r.metrics == nil {
		return
	}

	reason := metrics.ReasonUnavailable
	if errors.Is(err, ErrMalformedRecord) {
		reason = metrics.ReasonMalformed
	}
	r.metrics.SourceFailures.WithLabelValues(reason).Inc()
}

func hasScheme(locator string, schemes ...string) bool {
	lower := strings.ToLower(locator)
	for _, scheme := range schemes {
		if strings.HasPrefix(lower, scheme+"://") {
			return true
		}
	}
	return false
}
