package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentnest/server/config"
	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/database"
)

// Handler owns the query/mutation surface.
type Handler struct {
	db     *database.Database
	cfg    *config.Config
	logger *logrus.Logger
	ops    map[string]operationFunc
}

// operationFunc executes one named operation against its raw argument set.
type operationFunc func(c *gin.Context, args json.RawMessage) (any, error)

func NewHandler(db *database.Database, cfg *config.Config, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	h := &Handler{db: db, cfg: cfg, logger: logger}
	h.ops = map[string]operationFunc{
		// queries
		"users":            h.Users,
		"login":            h.Login,
		"apartments":       h.Apartments,
		"apartmentsGeoLoc": h.ApartmentsGeoLoc,
		"favorites":        h.Favorites,
		// mutations
		"register":        h.Register,
		"createApartment": h.CreateApartment,
		"markAsFavorite":  h.MarkAsFavorite,
	}
	return h
}

type queryRequest struct {
	Operation string          `json:"operation" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// Query is the single endpoint behind the access gate. Operations are
// invoked by name with a structured argument set and answered with either
// a data envelope or a structured error.
func (h *Handler) Query(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.renderError(c, "", apperrors.InvalidArgument("invalid request body"))
		return
	}

	op, ok := h.ops[req.Operation]
	if !ok {
		h.renderError(c, req.Operation, apperrors.InvalidArgumentf("unknown operation %q", req.Operation))
		return
	}

	result, err := op(c, req.Arguments)
	if err != nil {
		h.renderError(c, req.Operation, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// decodeArgs unmarshals an operation's argument set. A missing arguments
// object is treated as empty so argument-less invocations stay legal.
func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return apperrors.InvalidArgument("malformed operation arguments")
	}
	return nil
}
