package client

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	apperrors "staffdir/internal/errors"
	"staffdir/internal/logging"
	"staffdir/internal/metrics"
	"staffdir/internal/model"
	"staffdir/internal/response"
	"staffdir/internal/tracing"
)

// DepartmentPath is the lookup route of the department service.
const DepartmentPath = "/api/v1/department/{id}"

// DepartmentClient resolves department ids against the department service.
type DepartmentClient interface {
	// GetDepartment returns (nil, nil) when the department service reports the
	// id as unknown. Any other failure wraps apperrors.ErrDependency.
	GetDepartment(ctx context.Context, id uint) (*model.Department, error)
}

type departmentEnvelope struct {
	Status string            `json:"status"`
	Code   string            `json:"code"`
	Data   *model.Department `json:"data"`
}

type departmentClient struct {
	resty   *resty.Client
	metrics *metrics.Metrics
}

// NewDepartmentClient builds a client for the department service at baseURL.
// Every lookup is a single attempt bounded by timeout.
func NewDepartmentClient(baseURL string, timeout time.Duration, m *metrics.Metrics) DepartmentClient {
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(zap.S().Named("resty"))

	return &departmentClient{resty: r, metrics: m}
}

func (c *departmentClient) GetDepartment(ctx context.Context, id uint) (*model.Department, error) {
	log := logging.FromContext(ctx).With(zap.Uint("departmentId", id))
	start := time.Now()

	req := c.resty.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatUint(uint64(id), 10))
	tracing.Inject(ctx, req.Header)

	resp, err := req.Get(DepartmentPath)
	if err != nil {
		return nil, c.fail(log, start, fmt.Errorf("%w: get department %d: %v", apperrors.ErrDependency, id, err))
	}

	status := resp.StatusCode()
	if status != http.StatusNotFound && (status < 200 || status >= 300) {
		return nil, c.fail(log, start, fmt.Errorf("%w: get department %d: status %d", apperrors.ErrDependency, id, status))
	}

	out, err := decodeEnvelope(resp)
	if err != nil {
		return nil, c.fail(log, start, fmt.Errorf("%w: get department %d: status %d: %v", apperrors.ErrDependency, id, status, err))
	}

	if status == http.StatusNotFound {
		// only a record-level miss counts; a route miss means a misconfigured peer
		if out.Status != response.StatusError || out.Code != apperrors.CodeNotFound {
			return nil, c.fail(log, start, fmt.Errorf("%w: get department %d: status 404 with code %q", apperrors.ErrDependency, id, out.Code))
		}
		c.metrics.ObserveLookup(metrics.LookupMissing, time.Since(start))
		log.Warn("department not found, returning user without department")
		return nil, nil
	}

	if out.Status != response.StatusSuccess {
		return nil, c.fail(log, start, fmt.Errorf("%w: get department %d: envelope status %q", apperrors.ErrDependency, id, out.Status))
	}
	if out.Data == nil {
		c.metrics.ObserveLookup(metrics.LookupMissing, time.Since(start))
		log.Warn("department lookup returned no payload")
		return nil, nil
	}
	c.metrics.ObserveLookup(metrics.LookupFound, time.Since(start))
	log.Debug("department resolved", zap.Duration("took", time.Since(start)))
	return out.Data, nil
}

func (c *departmentClient) fail(log *zap.Logger, start time.Time, err error) error {
	c.metrics.ObserveLookup(metrics.LookupFailed, time.Since(start))
	log.Error("department lookup failed", zap.Error(err))
	return err
}

// decodeEnvelope accepts only a JSON response envelope.
func decodeEnvelope(resp *resty.Response) (departmentEnvelope, error) {
	var out departmentEnvelope
	ct := resp.Header().Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "application/json" {
		return out, fmt.Errorf("unexpected content type %q", ct)
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode envelope: %w", err)
	}
	return out, nil
}
