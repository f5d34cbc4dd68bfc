package handler

import "sport-attendance-backend/internal/model"

// View structs membatasi kedalaman serialisasi supaya graph entity yang
// saling silang (user-organisasi-member-sesi-record) tidak pernah berputar.

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MemberView struct {
	OrgID  uint        `json:"org_id"`
	UserID uint        `json:"user_id"`
	User   UserSummary `json:"user"`
}

type OrganizationView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	EnrollCode  string       `json:"enroll_code"`
	UserID      uint         `json:"user_id"`
	CreatedBy   *UserSummary `json:"created_by,omitempty"`
	Members     []MemberView `json:"members,omitempty"`
	MemberCount int64        `json:"member_count,omitempty"`
}

type SessionSummary struct {
	Date      string `json:"date"`
	TimeOpen  string `json:"time_open"`
	TimeClose string `json:"time_close"`
}

type RecordView struct {
	ID                  uint         `json:"id"`
	AttendanceSessionID uint         `json:"attendance_session_id"`
	UserID              uint         `json:"user_id"`
	Status              string       `json:"status"`
	User                *UserSummary `json:"user,omitempty"`
}

func toUserSummary(u *model.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toMemberViews(members []model.OrgMember) []MemberView {
	views := make([]MemberView, 0, len(members))
	for i := range members {
		m := &members[i]
		views = append(views, MemberView{
			OrgID:  m.OrgID,
			UserID: m.UserID,
			User:   toUserSummary(&m.User),
		})
	}
	return views
}

func toOrganizationView(org *model.Organization, creator *model.User) OrganizationView {
	view := OrganizationView{
		ID:         org.ID,
		Name:       org.Name,
		EnrollCode: org.EnrollCode,
		UserID:     org.UserID,
		Members:    toMemberViews(org.Members),
	}
	if creator != nil {
		summary := toUserSummary(creator)
		view.CreatedBy = &summary
	}
	return view
}

func toRecordViews(records []model.AttendanceRecord) []RecordView {
	views := make([]RecordView, 0, len(records))
	for i := range records {
		r := &records[i]
		view := RecordView{
			ID:                  r.ID,
			AttendanceSessionID: r.AttendanceSessionID,
			UserID:              r.UserID,
			Status:              r.Status,
		}
		if r.User.ID != 0 {
			summary := toUserSummary(&r.User)
			view.User = &summary
		}
		views = append(views, view)
	}
	return views
}
