// Package api exposes the fulfillment core over REST.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cellarlink/cellarlink/pkg/fulfillment/binding"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/cache"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/model"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/provenance"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/shipment"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/shippingorder"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/storage/postgres"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/voucher"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/voucherlock"
	"github.com/cellarlink/cellarlink/pkg/fulfillment/wms"
	"github.com/cellarlink/cellarlink/pkg/util"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
}

type API struct {
	orderSvc    shippingorder.Service
	bindingSvc  binding.Service
	shipmentSvc shipment.Service
	wmsSvc      wms.Service

	httpServer *http.Server
}

// NewAPIWithConfig assembles the whole service graph over one postgres
// storage. The voucher service and the customer directory are external
// collaborators supplied by the caller.
func NewAPIWithConfig(cfg APIConfig, voucherSvc voucher.Service, customers shippingorder.CustomerDirectory) (*API, error) {
	store, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	lockSvc := voucherlock.NewLockService(store, store, voucherSvc)
	bindingSvc := binding.NewService(store, store, cache.NewMemoryCache())
	orderSvc := shippingorder.NewService(store, store, lockSvc, bindingSvc, customers)
	publisher := provenance.NewPublisher(store)
	shipmentSvc := shipment.NewService(store, store, store, store, bindingSvc, voucherSvc, publisher)
	wmsSvc := wms.NewService(store, store, bindingSvc, shipmentSvc)

	return NewAPIWithController(orderSvc, bindingSvc, shipmentSvc, wmsSvc, cfg.LocalAddress)
}

func NewAPIWithController(
	orderSvc shippingorder.Service,
	bindingSvc binding.Service,
	shipmentSvc shipment.Service,
	wmsSvc wms.Service,
	localAddress string,
) (*API, error) {
	apiServer := &API{
		orderSvc:    orderSvc,
		bindingSvc:  bindingSvc,
		shipmentSvc: shipmentSvc,
		wmsSvc:      wmsSvc,
	}

	r := mux.NewRouter()
	r.HandleFunc("/shipping_order", apiServer.createShippingOrder).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order", apiServer.listShippingOrder).Methods(http.MethodGet)
	r.HandleFunc("/shipping_order/{id}", apiServer.getShippingOrder).Methods(http.MethodGet)
	r.HandleFunc("/shipping_order/{id}/transition", apiServer.transitionShippingOrder).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/cancel", apiServer.cancelShippingOrder).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/voucher", apiServer.addVoucher).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/voucher/{voucher_id}", apiServer.removeVoucher).Methods(http.MethodDelete)
	r.HandleFunc("/shipping_order/{id}/eligibility", apiServer.getEligibility).Methods(http.MethodGet)
	r.HandleFunc("/shipping_order/{id}/inventory", apiServer.requestEligibleInventory).Methods(http.MethodGet)
	r.HandleFunc("/shipping_order/{id}/exception", apiServer.listExceptions).Methods(http.MethodGet)
	r.HandleFunc("/shipping_order/{id}/exception/{exception_id}/resolve", apiServer.resolveException).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/line/{line_id}/bind", apiServer.bindLine).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/line/{line_id}/unbind", apiServer.unbindLine).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/picking_instructions", apiServer.sendPickingInstructions).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/picking_feedback", apiServer.receivePickingFeedback).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/validate_serials", apiServer.validateSerials).Methods(http.MethodPost)
	r.HandleFunc("/shipping_order/{id}/shipment", apiServer.createShipment).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}", apiServer.getShipment).Methods(http.MethodGet)
	r.HandleFunc("/shipment/{id}/confirm", apiServer.confirmShipment).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/wms_confirm", apiServer.wmsConfirmShipment).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/delivered", apiServer.markDelivered).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/failed", apiServer.markFailed).Methods(http.MethodPost)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

// writeError maps the sentinel error families onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidParameter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrShippingOrderNotFound),
		errors.Is(err, model.ErrLineNotFound),
		errors.Is(err, model.ErrExceptionNotFound),
		errors.Is(err, model.ErrVoucherNotFound),
		errors.Is(err, model.ErrBottleNotFound),
		errors.Is(err, model.ErrShipmentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrShippingOrderError),
		errors.Is(err, model.ErrBindingError),
		errors.Is(err, model.ErrVoucherLockError),
		errors.Is(err, model.ErrShipmentError),
		errors.Is(err, model.ErrWmsError):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func parsePagination(r *http.Request, req *storage.ListShippingOrdersRequest) error {
	offset, limit, err := paginationParams(r)
	if err != nil {
		return err
	}
	req.Offset, req.Limit = offset, limit
	return nil
}

func paginationParams(r *http.Request) (int, int, error) {
	offset, limit := 0, 20
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("offset is invalid")
		}
		offset = int(parsed)
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("limit is invalid")
		}
		limit = int(parsed)
	}
	return offset, limit, nil
}

func (a *API) createShippingOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shippingorder.CreateShippingOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.orderSvc.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) listShippingOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := storage.ListShippingOrdersRequest{}
	if err := parsePagination(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		req.CustomerIDs = []string{customerID}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Statuses = []model.ShippingOrderStatus{model.ShippingOrderStatus(status)}
	}
	if voucherID := r.URL.Query().Get("voucher_id"); voucherID != "" {
		req.VoucherIDs = []string{voucherID}
	}

	result, err := a.orderSvc.List(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getShippingOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := mux.Vars(r)["id"]

	result, err := a.orderSvc.Get(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) transitionShippingOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shippingorder.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.orderSvc.TransitionTo(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) cancelShippingOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shippingorder.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.orderSvc.Cancel(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) addVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shippingorder.VoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.orderSvc.AddVoucher(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) removeVoucher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	req := shippingorder.VoucherRequest{
		OrderID:   vars["id"],
		VoucherID: vars["voucher_id"],
		Actor:     r.URL.Query().Get("actor"),
	}

	result, err := a.orderSvc.RemoveVoucher(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := mux.Vars(r)["id"]

	result, err := a.orderSvc.GetVoucherEligibilitySummary(ctx, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) requestEligibleInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := binding.RequestEligibleInventoryRequest{
		OrderID:   mux.Vars(r)["id"],
		Requester: r.URL.Query().Get("requester"),
	}

	result, err := a.bindingSvc.RequestEligibleInventory(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) listExceptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := paginationParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := storage.ListExceptionsRequest{
		Offset:           offset,
		Limit:            limit,
		ShippingOrderIDs: []string{mux.Vars(r)["id"]},
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Statuses = []model.ExceptionStatus{model.ExceptionStatus(status)}
	}

	result, err := a.orderSvc.ListExceptions(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) resolveException(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	var req shippingorder.ResolveExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = vars["id"]
	req.ExceptionID = vars["exception_id"]

	result, err := a.orderSvc.ResolveException(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) bindLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	var req binding.BindVoucherToBottleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = vars["id"]
	req.LineID = vars["line_id"]

	result, err := a.bindingSvc.BindVoucherToBottle(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) unbindLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	var req binding.UnbindLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = vars["id"]
	req.LineID = vars["line_id"]

	result, err := a.bindingSvc.UnbindLine(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) sendPickingInstructions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wms.SendPickingInstructionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.wmsSvc.SendPickingInstructions(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) receivePickingFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wms.ReceivePickingFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.wmsSvc.ReceivePickingFeedback(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) validateSerials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wms.ValidateSerialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.wmsSvc.ValidateSerials(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) createShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shipment.CreateFromOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.OrderID = mux.Vars(r)["id"]

	result, err := a.shipmentSvc.CreateFromOrder(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) getShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shipmentID := mux.Vars(r)["id"]

	result, err := a.shipmentSvc.Get(ctx, shipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) confirmShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shipment.ConfirmShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.shipmentSvc.ConfirmShipment(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) wmsConfirmShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wms.WmsConfirmShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.wmsSvc.ConfirmShipment(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) markDelivered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shipment.MarkDeliveredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.shipmentSvc.MarkDelivered(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) markFailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shipment.MarkFailedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ShipmentID = mux.Vars(r)["id"]

	result, err := a.shipmentSvc.MarkFailed(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
