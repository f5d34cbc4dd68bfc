package handler

import (
	"sort"

	"sport-attendance-backend/internal/model"

	"gorm.io/gorm"
)

// memStore meniru kelima tabel di memori, termasuk unique index dan
// transaksi pembuatan organisasi, supaya handler bisa diuji tanpa MySQL.
type memStore struct {
	users    map[uint]*model.User
	orgs     map[uint]*model.Organization
	members  map[uint]*model.OrgMember
	sessions map[uint]*model.AttendanceSession
	records  map[uint]*model.AttendanceRecord
	nextID   uint

	failMemberInsert bool // paksa insert keanggotaan gagal di CreateWithCreator
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint]*model.User{},
		orgs:     map[uint]*model.Organization{},
		members:  map[uint]*model.OrgMember{},
		sessions: map[uint]*model.AttendanceSession{},
		records:  map[uint]*model.AttendanceRecord{},
	}
}

func (s *memStore) nextSeq() uint {
	s.nextID++
	return s.nextID
}

// --- UserRepository ---

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.s.nextSeq()
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]model.User, error) {
	ids := make([]uint, 0, len(r.s.users))
	for id := range r.s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.s.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.s.users, id)
	// Cascade seperti constraint FK di tabel asli: keanggotaan, sesi
	// buatannya (beserta record sesi itu), dan record absensinya ikut hilang
	for mid, m := range r.s.members {
		if m.UserID == id {
			delete(r.s.members, mid)
		}
	}
	for sid, sess := range r.s.sessions {
		if sess.UserID == id {
			delete(r.s.sessions, sid)
			for rid, rec := range r.s.records {
				if rec.AttendanceSessionID == sid {
					delete(r.s.records, rid)
				}
			}
		}
	}
	for rid, rec := range r.s.records {
		if rec.UserID == id {
			delete(r.s.records, rid)
		}
	}
	return nil
}

// --- OrganizationRepository ---

type fakeOrgRepo struct{ s *memStore }

func (r *fakeOrgRepo) CreateWithCreator(org *model.Organization, creator *model.User) error {
	if r.s.failMemberInsert {
		// Transaksi gagal di langkah keanggotaan: tidak ada efek yang tersisa
		return gorm.ErrInvalidTransaction
	}
	org.ID = r.s.nextSeq()
	org.UserID = creator.ID
	clone := *org
	r.s.orgs[org.ID] = &clone

	if u, ok := r.s.users[creator.ID]; ok {
		u.Role = model.RolePelatih
	}
	creator.Role = model.RolePelatih

	member := &model.OrgMember{OrgID: org.ID, UserID: creator.ID}
	member.ID = r.s.nextSeq()
	r.s.members[member.ID] = member
	return nil
}

func (r *fakeOrgRepo) GetByID(id uint) (*model.Organization, error) {
	org, ok := r.s.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *org
	members, _ := r.GetMembers(id)
	clone.Members = members
	return &clone, nil
}

func (r *fakeOrgRepo) GetByName(name string) (*model.Organization, error) {
	for _, org := range r.s.orgs {
		if org.Name == name {
			clone := *org
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrgRepo) GetByEnrollCode(code string) (*model.Organization, error) {
	for _, org := range r.s.orgs {
		if org.EnrollCode == code {
			clone := *org
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrgRepo) GetAll() ([]model.Organization, error) {
	ids := make([]uint, 0, len(r.s.orgs))
	for id := range r.s.orgs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	orgs := make([]model.Organization, 0, len(ids))
	for _, id := range ids {
		orgs = append(orgs, *r.s.orgs[id])
	}
	return orgs, nil
}

func (r *fakeOrgRepo) Update(org *model.Organization) error {
	if _, ok := r.s.orgs[org.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *org
	clone.Members = nil
	r.s.orgs[org.ID] = &clone
	return nil
}

func (r *fakeOrgRepo) Delete(id uint) error {
	delete(r.s.orgs, id)
	for mid, m := range r.s.members {
		if m.OrgID == id {
			delete(r.s.members, mid)
		}
	}
	return nil
}

func (r *fakeOrgRepo) AddMember(member *model.OrgMember) error {
	for _, m := range r.s.members {
		if m.OrgID == member.OrgID && m.UserID == member.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	member.ID = r.s.nextSeq()
	clone := *member
	r.s.members[member.ID] = &clone
	return nil
}

func (r *fakeOrgRepo) GetMember(orgID, userID uint) (*model.OrgMember, error) {
	for _, m := range r.s.members {
		if m.OrgID == orgID && m.UserID == userID {
			clone := *m
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrgRepo) GetMembers(orgID uint) ([]model.OrgMember, error) {
	ids := make([]uint, 0)
	for id, m := range r.s.members {
		if m.OrgID == orgID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	members := make([]model.OrgMember, 0, len(ids))
	for _, id := range ids {
		m := *r.s.members[id]
		if u, ok := r.s.users[m.UserID]; ok {
			m.User = *u
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *fakeOrgRepo) CountMembers(orgID uint) (int64, error) {
	var count int64
	for _, m := range r.s.members {
		if m.OrgID == orgID {
			count++
		}
	}
	return count, nil
}

// --- AttendanceRepository ---

type fakeAttendanceRepo struct{ s *memStore }

func (r *fakeAttendanceRepo) CreateSession(session *model.AttendanceSession) error {
	session.ID = r.s.nextSeq()
	clone := *session
	r.s.sessions[session.ID] = &clone
	return nil
}

func (r *fakeAttendanceRepo) GetSessionByID(id uint) (*model.AttendanceSession, error) {
	session, ok := r.s.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *session
	return &clone, nil
}

func (r *fakeAttendanceRepo) GetSessionsByOrg(orgID uint) ([]model.AttendanceSession, error) {
	ids := make([]uint, 0)
	for id, sess := range r.s.sessions {
		if sess.OrgID == orgID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	sessions := make([]model.AttendanceSession, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, *r.s.sessions[id])
	}
	return sessions, nil
}

func (r *fakeAttendanceRepo) UpdateSession(session *model.AttendanceSession) error {
	if _, ok := r.s.sessions[session.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *session
	r.s.sessions[session.ID] = &clone
	return nil
}

func (r *fakeAttendanceRepo) CreateRecord(record *model.AttendanceRecord) error {
	for _, rec := range r.s.records {
		if rec.AttendanceSessionID == record.AttendanceSessionID && rec.UserID == record.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	record.ID = r.s.nextSeq()
	clone := *record
	r.s.records[record.ID] = &clone
	return nil
}

func (r *fakeAttendanceRepo) GetRecord(sessionID, userID uint) (*model.AttendanceRecord, error) {
	for _, rec := range r.s.records {
		if rec.AttendanceSessionID == sessionID && rec.UserID == userID {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttendanceRepo) UpdateRecord(record *model.AttendanceRecord) error {
	if _, ok := r.s.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *record
	r.s.records[record.ID] = &clone
	return nil
}

func (r *fakeAttendanceRepo) GetRecordsBySession(sessionID uint) ([]model.AttendanceRecord, error) {
	ids := make([]uint, 0)
	for id, rec := range r.s.records {
		if rec.AttendanceSessionID == sessionID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	records := make([]model.AttendanceRecord, 0, len(ids))
	for _, id := range ids {
		rec := *r.s.records[id]
		if u, ok := r.s.users[rec.UserID]; ok {
			rec.User = *u
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *fakeAttendanceRepo) GetRecordsByOrg(orgID uint) ([]model.AttendanceRecord, error) {
	ids := make([]uint, 0)
	for id, rec := range r.s.records {
		sess, ok := r.s.sessions[rec.AttendanceSessionID]
		if ok && sess.OrgID == orgID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	records := make([]model.AttendanceRecord, 0, len(ids))
	for _, id := range ids {
		rec := *r.s.records[id]
		if u, ok := r.s.users[rec.UserID]; ok {
			rec.User = *u
		}
		records = append(records, rec)
	}
	return records, nil
}
