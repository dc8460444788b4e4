package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/model"
)

var (
	_ database.ProfileDBHandlerFunctions        = (*Profiles)(nil)
	_ database.JobDBHandlerFunctions            = (*Jobs)(nil)
	_ database.ApplicationDBHandlerFunctions    = (*Applications)(nil)
	_ database.CompanyDBHandlerFunctions        = (*Companies)(nil)
	_ database.ContactMessageDBHandlerFunctions = (*ContactMessages)(nil)
)

type Profiles struct {
	*memoryTable[model.Profile, *model.Profile]
}

func (p *Profiles) CheckTableExistance() (bool, error) { return true, nil }
func (p *Profiles) CreateTable() error                 { return nil }
func (p *Profiles) DropTable() error                   { p.truncate(); return nil }

func (p *Profiles) InsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	return p.insert(ctx, profile)
}

func (p *Profiles) CountProfiles(ctx context.Context, filters ...model.Filter) (int, error) {
	return p.count(ctx, filters)
}

func (p *Profiles) SelectProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return p.selectOne(ctx, id)
}

func (p *Profiles) SelectAllProfiles(ctx context.Context, query model.Query) ([]*model.Profile, error) {
	return p.selectAll(ctx, query)
}

func (p *Profiles) SelectProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
	return p.selectByIDs(ctx, ids)
}

func (p *Profiles) UpdateProfile(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Profile, error) {
	return p.update(ctx, id, fields)
}

func (p *Profiles) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return p.delete(ctx, id)
}

type Jobs struct {
	*memoryTable[model.Job, *model.Job]
}

func (j *Jobs) CheckTableExistance() (bool, error) { return true, nil }
func (j *Jobs) CreateTable() error                 { return nil }
func (j *Jobs) DropTable() error                   { j.truncate(); return nil }

func (j *Jobs) InsertJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	return j.insert(ctx, job)
}

func (j *Jobs) CountJobs(ctx context.Context, filters ...model.Filter) (int, error) {
	return j.count(ctx, filters)
}

func (j *Jobs) SelectJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return j.selectOne(ctx, id)
}

func (j *Jobs) SelectAllJobs(ctx context.Context, query model.Query) ([]*model.Job, error) {
	return j.selectAll(ctx, query)
}

func (j *Jobs) SelectJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Job, error) {
	return j.selectByIDs(ctx, ids)
}

func (j *Jobs) UpdateJob(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Job, error) {
	return j.update(ctx, id, fields)
}

func (j *Jobs) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return j.delete(ctx, id)
}

type Applications struct {
	*memoryTable[model.Application, *model.Application]
}

func (a *Applications) CheckTableExistance() (bool, error) { return true, nil }
func (a *Applications) CreateTable() error                 { return nil }
func (a *Applications) DropTable() error                   { a.truncate(); return nil }

func (a *Applications) InsertApplication(ctx context.Context, application *model.Application) (*model.Application, error) {
	return a.insert(ctx, application)
}

func (a *Applications) CountApplications(ctx context.Context, filters ...model.Filter) (int, error) {
	return a.count(ctx, filters)
}

func (a *Applications) SelectApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return a.selectOne(ctx, id)
}

func (a *Applications) SelectAllApplications(ctx context.Context, query model.Query) ([]*model.Application, error) {
	return a.selectAll(ctx, query)
}

func (a *Applications) SelectApplicationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Application, error) {
	return a.selectByIDs(ctx, ids)
}

func (a *Applications) UpdateApplication(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Application, error) {
	return a.update(ctx, id, fields)
}

func (a *Applications) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	return a.delete(ctx, id)
}

type Companies struct {
	*memoryTable[model.Company, *model.Company]
}

func (c *Companies) CheckTableExistance() (bool, error) { return true, nil }
func (c *Companies) CreateTable() error                 { return nil }
func (c *Companies) DropTable() error                   { c.truncate(); return nil }

func (c *Companies) InsertCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	return c.insert(ctx, company)
}

func (c *Companies) CountCompanies(ctx context.Context, filters ...model.Filter) (int, error) {
	return c.count(ctx, filters)
}

func (c *Companies) SelectCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return c.selectOne(ctx, id)
}

func (c *Companies) SelectAllCompanies(ctx context.Context, query model.Query) ([]*model.Company, error) {
	return c.selectAll(ctx, query)
}

func (c *Companies) SelectCompaniesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error) {
	return c.selectByIDs(ctx, ids)
}

func (c *Companies) UpdateCompany(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Company, error) {
	return c.update(ctx, id, fields)
}

func (c *Companies) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, id)
}

type ContactMessages struct {
	*memoryTable[model.ContactMessage, *model.ContactMessage]
}

func (m *ContactMessages) CheckTableExistance() (bool, error) { return true, nil }
func (m *ContactMessages) CreateTable() error                 { return nil }
func (m *ContactMessages) DropTable() error                   { m.truncate(); return nil }

func (m *ContactMessages) InsertContactMessage(ctx context.Context, message *model.ContactMessage) (*model.ContactMessage, error) {
	return m.insert(ctx, message)
}

func (m *ContactMessages) CountContactMessages(ctx context.Context, filters ...model.Filter) (int, error) {
	return m.count(ctx, filters)
}

func (m *ContactMessages) SelectContactMessage(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	return m.selectOne(ctx, id)
}

func (m *ContactMessages) SelectAllContactMessages(ctx context.Context, query model.Query) ([]*model.ContactMessage, error) {
	return m.selectAll(ctx, query)
}

func (m *ContactMessages) SelectContactMessagesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.ContactMessage, error) {
	return m.selectByIDs(ctx, ids)
}

func (m *ContactMessages) UpdateContactMessage(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.ContactMessage, error) {
	return m.update(ctx, id, fields)
}

func (m *ContactMessages) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
