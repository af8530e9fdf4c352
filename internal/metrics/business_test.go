package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks the exposition output for a sample of name whose
// labels match the pattern. The OTel exporter adds scope labels, hence the
// loose match.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("biz_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "biz_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "returns", "receipt_finalize", "success")
	bm.RecordOperation(ctx, "returns", "receipt_finalize", "success")
	bm.RecordOperation(ctx, "returns", "receipt_finalize", "error")
	bm.RecordDuration(ctx, "returns", "receipt_finalize", 5*time.Millisecond, "success")
	bm.RecordDuration(ctx, "returns", "receipt_finalize", 7*time.Millisecond, "success")
	bm.RecordReturnCost(ctx, "South Island", 12)
	bm.RecordReturnCost(ctx, "Stewart Island", 30)

	output := scrape(t, provider)

	assertBizMetricLine(t, output, `biz_test_operations_total`,
		`domain="returns".*operation="receipt_finalize".*status="success"`, `2`)
	assertBizMetricLine(t, output, `biz_test_operations_total`,
		`domain="returns".*operation="receipt_finalize".*status="error"`, `1`)
	assertBizMetricLine(t, output, `biz_test_operation_duration_seconds_count`,
		`operation="receipt_finalize".*status="success"`, `2`)
	assertBizMetricLine(t, output, `biz_test_return_cost_dollars_count`,
		`zone="South Island"`, `1`)
	assertBizMetricLine(t, output, `biz_test_return_cost_dollars_sum`,
		`zone="Stewart Island"`, `30`)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)
	assert.NotPanics(t, func() {
		noOp.RecordOperation(context.Background(), "returns", "receipt_list", "success")
		noOp.RecordDuration(context.Background(), "returns", "receipt_list", time.Millisecond, "error")
		noOp.RecordReturnCost(context.Background(), "North Island", 8)
	})
}
