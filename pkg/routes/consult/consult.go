// Package consult exposes the RAG consult endpoints
package consult

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/sage/pkg/llm"
	"github.com/Ramsey-B/sage/pkg/rag"
)

// ConsultRequest is the body for the consult endpoints
type ConsultRequest struct {
	Consulta string `json:"consulta" validate:"required"`
}

// Register registers consult routes
func Register(e *echo.Echo) {
	e.POST("/rag", Consult)
	e.POST("/rag_full", ConsultFull)
	e.GET("/check_llm", CheckLLM)
}

// Consult runs the consult pipeline and returns the matched persons
func Consult(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindRequest(c)
	if err != nil {
		return err
	}

	ctx, service, err := ectoinject.GetContext[*rag.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "consult service unavailable")
	}

	personas := service.Process(ctx, req.Consulta)
	return c.JSON(http.StatusOK, personas)
}

// ConsultFull runs the consult pipeline and returns the matched persons plus
// the provider's answer and raw payload for debugging
func ConsultFull(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindRequest(c)
	if err != nil {
		return err
	}

	ctx, service, err := ectoinject.GetContext[*rag.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "consult service unavailable")
	}

	result := service.ProcessWithDebug(ctx, req.Consulta)
	return c.JSON(http.StatusOK, result)
}

// CheckLLM sends a fixed probe prompt to the completion provider and returns
// the raw result
func CheckLLM(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, client, err := ectoinject.GetContext[*llm.Client](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "completion client unavailable")
	}

	result := client.Complete(ctx, "Hola, ¿qué fecha es hoy?", "")
	return c.JSON(http.StatusOK, result)
}

func bindRequest(c echo.Context) (*ConsultRequest, error) {
	var req ConsultRequest
	if err := c.Bind(&req); err != nil {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
