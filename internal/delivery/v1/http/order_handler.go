package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderLineBody struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Qty       int64  `json:"qty"`
}

type placeOrderBody struct {
	Date  string          `json:"date"`
	Lines []orderLineBody `json:"lines"`
}

type orderGroupRowBody struct {
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name"`
	Qty         int64  `json:"qty"`
}

type orderGroupBody struct {
	OrderDate string              `json:"order_date"`
	Rows      []orderGroupRowBody `json:"rows"`
}

type orderLineInfoBody struct {
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name"`
	Qty         int64  `json:"qty"`
}

type orderWithLinesBody struct {
	ID    string              `json:"id"`
	Lines []orderLineInfoBody `json:"lines"`
}

// placeOrder
//
//	@Summary		Размещение заказа
//	@Description	Атомарно проверяет и списывает остатки по всем строкам корзины
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		placeOrderBody			true	"Корзина"
//	@Success		201		{object}	map[string]interface{}	"Заказ размещён"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		409		{object}	ConflictResponse		"Нехватка остатков"
//	@Failure		422		{object}	ConflictResponse		"Неизвестный вариант"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body placeOrderBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		o.logger.Warnf("%d: malformed place order body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	date := time.Now().UTC()
	if body.Date != "" {
		parsed, err := parseDate(body.Date)
		if err != nil {
			WriteError(w, err)
			return
		}
		date = parsed
	}

	lines := make([]usecase.OrderLineReq, 0, len(body.Lines))
	for _, l := range body.Lines {
		lines = append(lines, usecase.OrderLineReq{
			ProductID: l.ProductID,
			VariantID: l.VariantID,
			Qty:       l.Qty,
		})
	}

	orderID, err := o.orderUsecase.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(date, lines))
	if err != nil {
		o.logger.Warnf("place order failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"order_id": orderID,
	})
}

// voidOrder
//
//	@Summary		Аннулирование заказа
//	@Description	Мягко удаляет заказ, остатки по умолчанию не возвращаются
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string					true	"ID заказа"
//	@Success		200	{object}	map[string]interface{}	"Заказ аннулирован"
//	@Failure		404	{object}	ErrorResponse			"Заказ не найден"
//	@Router			/orders/{id} [delete]
func (o *OrderHandler) voidOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	if err := o.orderUsecase.VoidOrder(r.Context(), orderID); err != nil {
		o.logger.Warnf("void order %s failed: %s", orderID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   "voided",
	})
}

// filterOrders
//
//	@Summary		Отчёт по заказам
//	@Description	Группирует заказы диапазона дат по календарным датам
//	@Tags			orders
//	@Produce		json
//	@Param			date_from	query		string			true	"Начало диапазона (YYYY-MM-DD)"
//	@Param			date_to		query		string			true	"Конец диапазона (YYYY-MM-DD)"
//	@Param			sort		query		string			false	"Направление сортировки групп (ASC|DESC)"
//	@Success		200			{array}		orderGroupBody	"Группы заказов"
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/orders [get]
func (o *OrderHandler) filterOrders(w http.ResponseWriter, r *http.Request) {
	dateFrom, err := parseDate(r.URL.Query().Get("date_from"))
	if err != nil {
		WriteError(w, e.ErrInvalidDateRange)
		return
	}

	dateTo, err := parseDate(r.URL.Query().Get("date_to"))
	if err != nil {
		WriteError(w, e.ErrInvalidDateRange)
		return
	}

	sort := usecase.SortDesc
	if s := r.URL.Query().Get("sort"); s != "" {
		sort = usecase.SortDirection(s)
	}

	groups, err := o.orderUsecase.FilterOrders(r.Context(), usecase.NewFilterOrdersReq(dateFrom, dateTo, sort))
	if err != nil {
		o.logger.Warnf("filter orders failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]orderGroupBody, 0, len(groups))
	for _, g := range groups {
		group := orderGroupBody{OrderDate: g.OrderDate, Rows: make([]orderGroupRowBody, 0, len(g.Rows))}
		for _, row := range g.Rows {
			group.Rows = append(group.Rows, orderGroupRowBody{
				ProductName: row.ProductName,
				VariantName: row.VariantName,
				Qty:         row.Qty,
			})
		}
		result = append(result, group)
	}

	WriteSuccess(w, http.StatusOK, result)
}

// listOrdersByDate
//
//	@Summary		Заказы одной даты
//	@Description	Возвращает заказы календарной даты с расшифровкой строк
//	@Tags			orders
//	@Produce		json
//	@Param			date	path		string					true	"Календарная дата (YYYY-MM-DD)"
//	@Success		200		{array}		orderWithLinesBody		"Заказы"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/orders/date/{date} [get]
func (o *OrderHandler) listOrdersByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := o.orderUsecase.ListOrdersByDate(r.Context(), &usecase.OrdersByDateReq{Date: date})
	if err != nil {
		o.logger.Warnf("list orders by date failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]orderWithLinesBody, 0, len(orders))
	for _, order := range orders {
		body := orderWithLinesBody{ID: order.ID, Lines: make([]orderLineInfoBody, 0, len(order.Lines))}
		for _, line := range order.Lines {
			body.Lines = append(body.Lines, orderLineInfoBody{
				ProductName: line.ProductName,
				VariantName: line.VariantName,
				Qty:         line.Qty,
			})
		}
		result = append(result, body)
	}

	WriteSuccess(w, http.StatusOK, result)
}
