package metrics

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.NotificationReceived("orders_v2")
	r.NotificationReceived("orders_v2")
	r.NotificationReceived("items")
	r.OrderIngested(0.2)
	r.IngestFailed("fetch")
	r.SetSKUConflicts(3)
	r.Reenriched(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.NotificationsReceived.WithLabelValues("orders_v2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.OrdersIngested))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.IngestFailures.WithLabelValues("fetch")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.SKUConflicts))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.OrdersReenriched))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sales_notifications_received_total{topic="other"} 1`)
}

func TestNotificationTopicsAreBounded(t *testing.T) {
	r := NewRegistry()
	r.NotificationReceived("orders_v2")
	for i := 0; i < 100; i++ {
		r.NotificationReceived(fmt.Sprintf("junk-%d", i))
	}

	assert.Equal(t, 2, testutil.CollectAndCount(r.NotificationsReceived))
	assert.Equal(t, 100.0, testutil.ToFloat64(r.NotificationsReceived.WithLabelValues(TopicOther)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NotificationsReceived.WithLabelValues("orders_v2")))
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.NotificationReceived("orders_v2")
		r.OrderIngested(1)
		r.IngestFailed("store")
		r.SetSKUConflicts(1)
		r.Reenriched(1)
	})
}
