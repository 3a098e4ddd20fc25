package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jekabolt/sales-panel/internal/auth/jwt"
	"github.com/jekabolt/sales-panel/internal/dto"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't write response", slog.String("err", err.Error()))
	}
}

// writeError maps err to a status code. Server side failures are reported
// without their details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := gerr.HTTPStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("err", err.Error()),
			slog.String("path", r.URL.Path),
		)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: can't read body: %v", gerr.BadRequest, err)
	}
	return body, nil
}

func audit(ctx context.Context, msg string, attrs ...any) {
	attrs = append(attrs, slog.String("subject", jwt.Subject(ctx)))
	slog.Default().InfoContext(ctx, msg, attrs...)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed",
			slog.String("err", err.Error()),
		)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// marketplaceWebhook always acknowledges so the marketplace does not retry
// notifications that can never succeed. Failures are logged.
func (s *Server) marketplaceWebhook(w http.ResponseWriter, r *http.Request) {
	defer writeJSON(w, http.StatusOK, map[string]string{"status": "received"})

	body, err := readBody(w, r)
	if err != nil {
		slog.Default().WarnContext(r.Context(), "can't read notification",
			slog.String("err", err.Error()),
		)
		return
	}
	var n dto.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		slog.Default().WarnContext(r.Context(), "can't decode notification",
			slog.String("err", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.c.WebhookTimeout)
	defer cancel()
	if err := s.ingest.Handle(ctx, &n); err != nil {
		slog.Default().ErrorContext(ctx, "can't ingest notification",
			slog.String("err", err.Error()),
			slog.String("resource", n.Resource),
			slog.String("topic", n.Topic),
		)
	}
}

// ORDERS

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.admin.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.admin.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) updateFreight(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")
	o, err := s.admin.UpdateFreight(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	audit(r.Context(), "freight override changed", slog.String("order_id", id))
	writeJSON(w, http.StatusOK, o)
}

// PRODUCTS

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.admin.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.admin.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := s.admin.AddProduct(r.Context(), body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	audit(r.Context(), "product added", slog.String("product_id", p.ID))
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")
	p, err := s.admin.UpdateProduct(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	audit(r.Context(), "product updated", slog.String("product_id", id))
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.admin.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	audit(r.Context(), "product deleted", slog.String("product_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// REPORTS

func (s *Server) salesSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	series, err := s.admin.SalesSeries(r.Context(), q.Get("startDate"), q.Get("endDate"), q.Get("granularity"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *Server) salesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.admin.Summary(r.Context(), r.URL.Query().Get("months"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
