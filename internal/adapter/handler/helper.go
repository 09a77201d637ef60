package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/errors"
	usecaseErrors "github.com/johnquangdev/virtual-office/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging. Usecase sentinels
// are translated to AppError first, so every handler maps the same way.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(c, err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps usecase sentinels onto transport-level errors. Anything
// unknown becomes a 500.
func toAppError(c echo.Context, err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	id := c.Param("id")
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotActive):
		return errors.ErrMeetingNotActive(id)
	case stdErrors.Is(err, usecaseErrors.ErrMeetingAlreadyEnded):
		return errors.ErrMeetingAlreadyEnded(id)
	case stdErrors.Is(err, usecaseErrors.ErrNotParticipant),
		stdErrors.Is(err, usecaseErrors.ErrNoParticipants):
		return errors.ErrParticipantNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrCompanyNotFound):
		return errors.ErrNotFound("company")
	case stdErrors.Is(err, usecaseErrors.ErrStaffNotFound):
		return errors.ErrNotFound("staff")
	case stdErrors.Is(err, usecaseErrors.ErrStaffInactive):
		return errors.ErrInvalidArgument("staff is not active")
	case stdErrors.Is(err, usecaseErrors.ErrAssetNotFound):
		return errors.ErrNotFound("asset")
	case stdErrors.Is(err, usecaseErrors.ErrImageNotFound):
		return errors.ErrNotFound("image")
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("resource")
	case stdErrors.Is(err, usecaseErrors.ErrAlreadyExists):
		return errors.ErrAlreadyExists("resource")
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedProvider):
		return errors.ErrProviderUnsupported("")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyMessage):
		return errors.ErrInvalidArgument("message content is empty")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidImageData):
		return errors.ErrInvalidArgument("invalid image data")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidPayload()
	case stdErrors.Is(err, usecaseErrors.ErrGenerationFailed):
		return errors.ErrGenerationFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}

// streamWriter adapts the echo response for token streaming. The status
// line and content type go out with the first byte, so a handler that
// fails before any output can still send a JSON error instead.
type streamWriter struct {
	resp    *echo.Response
	started bool
}

func newStreamWriter(c echo.Context) *streamWriter {
	return &streamWriter{resp: c.Response()}
}

func (w *streamWriter) Write(p []byte) (int, error) {
	if !w.started {
		w.resp.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
		w.resp.Header().Set("X-Accel-Buffering", "no")
		w.resp.WriteHeader(http.StatusOK)
		w.started = true
	}
	n, err := w.resp.Write(p)
	if err == nil {
		w.resp.Flush()
	}
	return n, err
}

// Started reports whether the status line has been sent
func (w *streamWriter) Started() bool {
	return w.started
}
