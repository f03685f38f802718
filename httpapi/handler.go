// Package httpapi exposes the allocation engine's request/response contract
// over HTTP.
//
// The handler is a thin presentation collaborator: it normalizes free-text
// demand input down to positive integers (the caller-side duty of the
// engine's input contract) and maps engine errors to HTTP status codes. All
// allocation semantics live in the engine.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/schema"

	bandalloc "github.com/Anoushka222/DAA-Project"
	"github.com/Anoushka222/DAA-Project/internal/logging"
	"github.com/Anoushka222/DAA-Project/types"
)

// allocateArgs is the decoded form of an allocate request.
//
// Demands arrive as free text ("50, 40, x,,30") and are filtered by
// ParseDemands; strategy tokens are resolved by types.ParseStrategyName.
type allocateArgs struct {
	Capacity int64  `schema:"capacity"`
	Demands  string `schema:"demands"`
	Strategy string `schema:"strategy"`
}

// Handler serves allocation requests over HTTP.
//
// It accepts GET (query parameters) and POST (form body) with the fields
// `capacity`, `demands` (comma-separated), and `strategy`
// (auto|greedy|dp|backtracking|random; default auto), and responds with the
// engine's JSON Response.
type Handler struct {
	engine  *bandalloc.Engine
	logger  types.Logger
	decoder *schema.Decoder
}

var _ http.Handler = (*Handler)(nil)

// NewHandler creates an allocate handler backed by engine.
//
// Parameters:
//   - engine: Allocation engine to serve
//   - logger: Request logger; nil means silent
//
// Returns:
//   - *Handler: Ready-to-mount handler
//
// Example:
//
//	mux := http.NewServeMux()
//	mux.Handle("/v1/allocate", httpapi.NewHandler(engine, logger))
func NewHandler(engine *bandalloc.Engine, logger types.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handler{
		engine:  engine,
		logger:  logger,
		decoder: decoder,
	}
}

// ServeHTTP decodes the request, runs the engine, and writes the JSON response.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var args allocateArgs
	if err := h.decoder.Decode(&args, r.Form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	strategy := types.StrategyAuto
	if args.Strategy != "" {
		var err error
		strategy, err = types.ParseStrategyName(args.Strategy)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	req := bandalloc.Request{
		Capacity: args.Capacity,
		Demands:  ParseDemands(args.Demands),
		Strategy: strategy,
	}

	resp, err := h.engine.Run(r.Context(), req)
	if err != nil {
		h.logger.Warn("allocation request failed",
			"capacity", req.Capacity,
			"demands", len(req.Demands),
			"strategy", strategy,
			"error", err,
		)
		http.Error(w, err.Error(), statusFor(err))

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bandalloc.ErrInvalidCapacity),
		errors.Is(err, bandalloc.ErrInvalidDemand),
		errors.Is(err, bandalloc.ErrUnknownStrategy):
		return http.StatusBadRequest
	case types.IsResourceLimitError(err):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
