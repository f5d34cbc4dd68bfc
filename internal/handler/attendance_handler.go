package handler

import (
	"errors"
	"strconv"
	"time"

	"sport-attendance-backend/internal/model"
	"sport-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttendanceHandler struct {
	repo     repository.AttendanceRepository
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository, orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, orgRepo: orgRepo, userRepo: userRepo}
}

type CreateSessionRequest struct {
	OrgID     uint   `json:"org_id"`
	Date      string `json:"date"`
	TimeOpen  string `json:"time_open"`
	TimeClose string `json:"time_close"`
	UserID    uint   `json:"user_id"`
}

func (h *AttendanceHandler) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "invalid request body",
		})
	}

	if req.OrgID == 0 || req.Date == "" || req.TimeOpen == "" || req.TimeClose == "" || req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "missing required fields: org_id, date, time_open, time_close or user_id",
		})
	}

	open, err := time.Parse("15:04", req.TimeOpen)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "time_open must be in HH:MM format",
		})
	}
	closeAt, err := time.Parse("15:04", req.TimeClose)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "time_close must be in HH:MM format",
		})
	}
	if open.After(closeAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "time_open must not be later than time_close",
		})
	}

	if _, err := h.orgRepo.GetByID(req.OrgID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}
	if _, err := h.userRepo.GetByID(req.UserID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "user not found",
		})
	}

	session := model.AttendanceSession{
		Date:      req.Date,
		TimeOpen:  req.TimeOpen,
		TimeClose: req.TimeClose,
		Status:    model.SessionOpen,
		UserID:    req.UserID,
		OrgID:     req.OrgID,
	}
	if err := h.repo.CreateSession(&session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"data":    session,
		"message": "attendance session created successfully",
	})
}

func (h *AttendanceHandler) GetSession(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	session, err := h.repo.GetSessionByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "attendance session not found",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    session,
		"message": "attendance session found",
	})
}

// CloseSession menutup sesi secara eksplisit. Tidak ada penutupan otomatis
// berdasarkan jam; status hanya berubah lewat endpoint ini.
func (h *AttendanceHandler) CloseSession(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	session, err := h.repo.GetSessionByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "attendance session not found",
		})
	}

	if session.Status == model.SessionClosed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "attendance session is already closed",
		})
	}

	session.Status = model.SessionClosed
	if err := h.repo.UpdateSession(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    session,
		"message": "attendance session closed successfully",
	})
}

type RecordAttendanceRequest struct {
	AttendanceSessionID uint   `json:"attendance_session_id"`
	UserID              uint   `json:"user_id"`
	Status              string `json:"status"`
}

func (h *AttendanceHandler) RecordAttendance(c *fiber.Ctx) error {
	var req RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "invalid request body",
		})
	}

	if req.AttendanceSessionID == 0 || req.UserID == 0 || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "missing required fields: attendance_session_id, user_id or status",
		})
	}

	if !model.ValidAttendanceStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "status must be one of: hadir, izin, tidak hadir",
		})
	}

	session, err := h.repo.GetSessionByID(req.AttendanceSessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "attendance session not found",
		})
	}
	if session.Status == model.SessionClosed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "attendance session is already closed",
		})
	}

	if _, err := h.userRepo.GetByID(req.UserID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "user not found",
		})
	}

	// Satu record per (sesi, user): record kedua jadi update status
	existing, err := h.repo.GetRecord(req.AttendanceSessionID, req.UserID)
	if err == nil {
		existing.Status = req.Status
		if err := h.repo.UpdateRecord(existing); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":  "success",
			"data":    existing,
			"message": "attendance record updated successfully",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	record := model.AttendanceRecord{
		AttendanceSessionID: req.AttendanceSessionID,
		UserID:              req.UserID,
		Status:              req.Status,
	}
	if err := h.repo.CreateRecord(&record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Kalah balapan dengan insert identik, jatuhkan ke update
			existing, getErr := h.repo.GetRecord(req.AttendanceSessionID, req.UserID)
			if getErr == nil {
				existing.Status = req.Status
				if updErr := h.repo.UpdateRecord(existing); updErr == nil {
					return c.JSON(fiber.Map{
						"status":  "success",
						"data":    existing,
						"message": "attendance record updated successfully",
					})
				}
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"data":    record,
		"message": "attendance recorded successfully",
	})
}

func (h *AttendanceHandler) GetSessionRecords(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if _, err := h.repo.GetSessionByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "attendance session not found",
		})
	}

	records, err := h.repo.GetRecordsBySession(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    toRecordViews(records),
		"message": "attendance records found",
	})
}

func (h *AttendanceHandler) GetOrgSessions(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if _, err := h.orgRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}

	sessions, err := h.repo.GetSessionsByOrg(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    sessions,
		"message": "attendance sessions found",
	})
}

func (h *AttendanceHandler) GetOrgRecords(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if _, err := h.orgRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "organization not found",
		})
	}

	records, err := h.repo.GetRecordsByOrg(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    toRecordViews(records),
		"message": "attendance records found",
	})
}
