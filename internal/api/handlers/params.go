package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// PathInt64 читает положительный идентификатор из пути
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// QueryInt64 читает необязательный положительный параметр запроса
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// QueryInt читает необязательный неотрицательный целочисленный параметр
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// QueryDate читает необязательную дату в формате YYYY-MM-DD
func QueryDate(r *http.Request, name string) (*types.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := types.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// QueryString возвращает nil для отсутствующего параметра
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryBool понимает true/false/1/0; отсутствующий параметр равен false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// QueryPeriod читает обязательные startDate и endDate
func QueryPeriod(r *http.Request) (types.Date, types.Date, error) {
	start, err := QueryDate(r, "startDate")
	if err != nil {
		return types.Date{}, types.Date{}, err
	}
	end, err := QueryDate(r, "endDate")
	if err != nil {
		return types.Date{}, types.Date{}, err
	}
	if start == nil || end == nil {
		return types.Date{}, types.Date{}, fmt.Errorf("startDate and endDate are required")
	}
	return *start, *end, nil
}
