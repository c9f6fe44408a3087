package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/pulpworks/pulpstore/internal/domain"
)

// ─── Cart API ───────────────────────────────────────────────────────────────
// GET    /api/cart            — items + derived totals + drawer visibility
// POST   /api/cart/items      — add one item (or bump quantity of same id)
// PUT    /api/cart/items/{id} — absolute quantity set (≤ 0 removes)
// DELETE /api/cart/items/{id} — remove
// DELETE /api/cart            — clear
// POST   /api/cart/open|close — drawer visibility

type lineItemResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Quantity      int      `json:"quantity"`
	Type          string   `json:"type"`
	LineTotal     float64  `json:"lineTotal"`
}

type cartResponse struct {
	Items      []lineItemResponse `json:"items"`
	ItemCount  int                `json:"itemCount"`
	Subtotal   float64            `json:"subtotal"`
	Shipping   float64            `json:"shipping"`
	GrandTotal float64            `json:"grandTotal"`
	Visible    bool               `json:"visible"`
}

func toCartResponse(view domain.CartView) cartResponse {
	items := make([]lineItemResponse, 0, len(view.Items))
	for _, li := range view.Items {
		item := lineItemResponse{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Price:       li.UnitPrice.InexactFloat64(),
			Image:       li.Image,
			Quantity:    li.Quantity,
			Type:        string(li.Kind),
			LineTotal:   li.LineTotal().InexactFloat64(),
		}
		if li.OriginalPrice != nil {
			p := li.OriginalPrice.InexactFloat64()
			item.OriginalPrice = &p
		}
		items = append(items, item)
	}
	return cartResponse{
		Items:      items,
		ItemCount:  view.Totals.ItemCount,
		Subtotal:   view.Totals.Subtotal.InexactFloat64(),
		Shipping:   view.Totals.Shipping.InexactFloat64(),
		GrandTotal: view.Totals.GrandTotal.InexactFloat64(),
		Visible:    view.Visible,
	}
}

// handleGetCart returns the full cart snapshot.
// GET /api/cart
func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	store := s.storeFor(w, r)
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}

type addItemRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Type          string   `json:"type"`
}

// handleAddItem adds one unit of an item to the cart.
// POST /api/cart/items
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := domain.NewLineItem{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   decimal.NewFromFloat(req.Price),
		Image:       req.Image,
		Kind:        domain.ItemKind(req.Type),
	}
	if req.OriginalPrice != nil {
		p := decimal.NewFromFloat(*req.OriginalPrice)
		input.OriginalPrice = &p
	}

	store := s.storeFor(w, r)
	if err := store.AddItem(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// handleUpdateQuantity sets an item's quantity to an absolute value.
// PUT /api/cart/items/{id}
func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store := s.storeFor(w, r)
	store.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}

// handleRemoveItem removes an item. Absent ids are a no-op, not an error.
// DELETE /api/cart/items/{id}
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	store := s.storeFor(w, r)
	store.RemoveItem(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}

// handleClearCart empties the cart, leaving drawer visibility untouched.
// DELETE /api/cart
func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	store := s.storeFor(w, r)
	store.Clear()
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}

// handleOpenCart opens the drawer. POST /api/cart/open
func (s *Server) handleOpenCart(w http.ResponseWriter, r *http.Request) {
	store := s.storeFor(w, r)
	store.SetVisible(true)
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}

// handleCloseCart closes the drawer. POST /api/cart/close
func (s *Server) handleCloseCart(w http.ResponseWriter, r *http.Request) {
	store := s.storeFor(w, r)
	store.SetVisible(false)
	writeJSON(w, http.StatusOK, toCartResponse(store.View()))
}
