package server

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/calc"
)

type StatementReq struct {
	Statement string `json:"statement"`
}

type StatementResp struct {
	// Result is absent for assignments and errors.
	Result *float64 `json:"result,omitempty"`
	// Text is the result formatted exactly, so that infinities and NaN
	// survive JSON.
	Text  string `json:"text,omitempty"`
	Kind  string `json:"kind"`
	Error string `json:"error,omitempty"`
}

type SymbolResp struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Value *float64 `json:"value,omitempty"`
	// Definition is the signature and body of a function.
	Definition string `json:"definition,omitempty"`
}

func (h *HttpEndpoints) runStatement(c *gin.Context) {
	var req StatementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.mu.Lock()
	r, err := h.calc.Run(req.Statement)
	h.mu.Unlock()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, calc.ErrDivideByZero) || errors.Is(err, calc.ErrRecursion) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, StatementResp{Kind: calc.ErrorKind(err).String(), Error: err.Error()})
		return
	}
	resp := StatementResp{Kind: r.Kind.String()}
	if r.HasValue() {
		resp.Text = r.String()
		if !math.IsInf(r.Value, 0) && !math.IsNaN(r.Value) {
			v := r.Value
			resp.Result = &v
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HttpEndpoints) listSymbols(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t := h.calc.Table()
	var syms []SymbolResp
	value := func(name string) *float64 {
		v, err := t.Value(name)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil
		}
		return &v
	}
	for _, s := range t.Constants() {
		syms = append(syms, SymbolResp{Name: s.Name(), Kind: s.Kind().String(), Value: value(s.Name())})
	}
	for _, s := range t.Variables() {
		syms = append(syms, SymbolResp{Name: s.Name(), Kind: s.Kind().String(), Value: value(s.Name())})
	}
	for _, s := range t.Functions() {
		syms = append(syms, SymbolResp{Name: s.Name(), Kind: s.Kind().String(), Definition: s.String()})
	}
	for _, s := range t.Operators() {
		syms = append(syms, SymbolResp{Name: s.Name(), Kind: s.Kind().String(), Definition: s.Op.String()})
	}
	c.JSON(http.StatusOK, gin.H{"symbols": syms})
}

func (h *HttpEndpoints) clearSymbol(c *gin.Context) {
	name := c.Param("name")
	h.mu.Lock()
	err := h.calc.Clear(name)
	h.mu.Unlock()
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "symbol cleared"})
	case errors.Is(err, calc.ErrCannotRemoveOperator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	}
}
