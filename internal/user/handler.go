package user

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/user-roster/internal/auth"
)

type Handler struct {
	service *Service
}

type createUserRequest struct {
	ID        *int   `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    *bool  `json:"active"`
}

// extractUserRequest is one element of the stateless active-names payload.
type extractUserRequest struct {
	ID        *int   `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    *bool  `json:"active"`
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Get("/users", h.getUsers)
	app.Get("/user/:id", h.getUser)
	app.Post("/users", h.createUser)
	app.Patch("/user/:id/active", h.setActive)
	app.Delete("/user/:id", h.deleteUser)
	app.Get("/api/v1/users/active-names", h.getActiveNames)
	// stateless: names are computed from the posted users only
	app.Post("/api/v1/users/active-names", h.extractActiveNames)
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	user, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId is required"})
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	created, err := h.service.Create(c.UserContext(), NewUser(*payload.ID, payload.FirstName, payload.LastName, active))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) setActive(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	payload := new(setActiveRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "active is required"})
	}

	updated, err := h.service.SetActive(c.UserContext(), id, *payload.Active)
	if err != nil {
		return writeError(c, err)
	}

	by, err := auth.SubjectFromCtx(c)
	if err != nil {
		by = "unknown"
	}
	log.Printf("user %d active=%t set by %s", id, *payload.Active, by)

	return c.JSON(updated)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *Handler) getActiveNames(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		names, err := h.service.ActiveNames(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(namesResponse{Names: names})
	}

	ids, err := parseIDs(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	names, err := h.service.ActiveNamesFor(c.UserContext(), ids)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(namesResponse{Names: names})
}

func (h *Handler) extractActiveNames(c *fiber.Ctx) error {
	var payload []*extractUserRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	users, err := usersFromRequest(payload)
	if err != nil {
		return writeError(c, err)
	}
	names, err := ActiveNamesByID(users)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(namesResponse{Names: names})
}

// usersFromRequest requires userId and active on every element.
func usersFromRequest(payload []*extractUserRequest) ([]*User, error) {
	users := make([]*User, 0, len(payload))
	for i, req := range payload {
		switch {
		case req == nil:
			return nil, fmt.Errorf("%w: user at index %d is nil", ErrInvalidInput, i)
		case req.ID == nil:
			return nil, fmt.Errorf("%w: user at index %d has no userId", ErrInvalidInput, i)
		case req.Active == nil:
			return nil, fmt.Errorf("%w: user at index %d has no active flag", ErrInvalidInput, i)
		}
		users = append(users, NewUser(*req.ID, req.FirstName, req.LastName, *req.Active))
	}
	return users, nil
}

// parseIDs reads a comma separated id list such as "1,2,3".
func parseIDs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New("invalid id " + strconv.Quote(p))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrIDExists):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}
