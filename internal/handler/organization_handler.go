package handler

import (
	"errors"
	"strconv"

	"sport-attendance-backend/internal/model"
	"sport-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrganizationHandler struct {
	repo     repository.OrganizationRepository
	userRepo repository.UserRepository
}

func NewOrganizationHandler(repo repository.OrganizationRepository, userRepo repository.UserRepository) *OrganizationHandler {
	return &OrganizationHandler{repo: repo, userRepo: userRepo}
}

type CreateOrganizationRequest struct {
	Name       string `json:"name"`
	EnrollCode string `json:"enroll_code"`
	UserID     uint   `json:"user_id"`
}

func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	var req CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "invalid request body",
		})
	}

	if req.Name == "" || req.EnrollCode == "" || req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "missing required fields: name, enroll_code or user_id",
		})
	}

	// Nama dan enroll code dua-duanya harus unik
	if _, err := h.repo.GetByName(req.Name); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status": "conflict", "message": "Organization already exists",
		})
	}
	if _, err := h.repo.GetByEnrollCode(req.EnrollCode); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status": "conflict", "message": "Enroll code already used",
		})
	}

	creator, err := h.userRepo.GetByID(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "user not found",
		})
	}

	org := model.Organization{
		Name:       req.Name,
		EnrollCode: req.EnrollCode,
	}

	// Promosi role + insert organisasi + keanggotaan pembuat, satu transaksi
	if err := h.repo.CreateWithCreator(&org, creator); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "conflict", "message": "Organization already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	view := toOrganizationView(&org, creator)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"data":    view,
		"message": "Organization created successfully",
	})
}

func (h *OrganizationHandler) GetOrganizations(c *fiber.Ctx) error {
	orgs, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	if len(orgs) == 0 {
		return c.JSON(fiber.Map{
			"status": "not found", "message": "organization not found", "data": []any{},
		})
	}

	views := make([]OrganizationView, 0, len(orgs))
	for i := range orgs {
		views = append(views, toOrganizationView(&orgs[i], nil))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    views,
		"message": "organizations found",
	})
}

func (h *OrganizationHandler) GetOrganization(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	org, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}

	creator, err := h.userRepo.GetByID(org.UserID)
	if err != nil {
		creator = nil
	}

	count, err := h.repo.CountMembers(org.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	view := toOrganizationView(org, creator)
	view.MemberCount = count

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    view,
		"message": "organization found",
	})
}

type UpdateOrganizationRequest struct {
	Name       *string `json:"name"`
	EnrollCode *string `json:"enroll_code"`
	CreatedBy  *uint   `json:"created_by"`
}

func (h *OrganizationHandler) UpdateOrganization(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "invalid request body",
		})
	}

	org, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.EnrollCode != nil {
		org.EnrollCode = *req.EnrollCode
	}
	if req.CreatedBy != nil {
		org.UserID = *req.CreatedBy
	}

	if err := h.repo.Update(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "conflict", "message": "Organization already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    toOrganizationView(org, nil),
		"message": "organization updated successfully",
	})
}

func (h *OrganizationHandler) DeleteOrganization(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "organization deleted successfully",
	})
}

type JoinOrganizationRequest struct {
	UserID     uint   `json:"user_id"`
	EnrollCode string `json:"enroll_code"`
}

func (h *OrganizationHandler) JoinOrganization(c *fiber.Ctx) error {
	var req JoinOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "invalid request body",
		})
	}

	if req.UserID == 0 || req.EnrollCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "User ID and enroll code are required.",
		})
	}

	org, err := h.repo.GetByEnrollCode(req.EnrollCode)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "Invalid enroll code.",
		})
	}

	if _, err := h.userRepo.GetByID(req.UserID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "user not found",
		})
	}

	if _, err := h.repo.GetMember(org.ID, req.UserID); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "User is already a member of this organization.",
		})
	}

	member := model.OrgMember{OrgID: org.ID, UserID: req.UserID}
	if err := h.repo.AddMember(&member); err != nil {
		// Unique index (org_id, user_id) menangkap join ganda yang balapan
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "User is already a member of this organization.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"data":    member,
		"message": "Successfully joined the organization.",
	})
}

func (h *OrganizationHandler) GetOrgMembers(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}

	members, err := h.repo.GetMembers(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    toMemberViews(members),
		"message": "members found",
	})
}
