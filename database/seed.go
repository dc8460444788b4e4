package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
)

// Seed fills an empty store with demo data spread over the six months
// before now. A store that already has profiles is left alone.
func Seed(ctx context.Context, store *Store, now time.Time) error {
	count, err := store.Profiles.CountProfiles(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(7))

	companies, err := seedCompanies(ctx, store, rng, now)
	if err != nil {
		return err
	}
	profiles, err := seedProfiles(ctx, store, rng, now)
	if err != nil {
		return err
	}
	jobs, err := seedJobs(ctx, store, rng, now, companies)
	if err != nil {
		return err
	}
	if err := seedApplications(ctx, store, rng, now, profiles, jobs); err != nil {
		return err
	}
	return seedContactMessages(ctx, store, rng, now)
}

func daysAgo(rng *rand.Rand, now time.Time, max int) time.Time {
	return now.Add(-time.Duration(rng.Intn(max*24)) * time.Hour)
}

func seedCompanies(ctx context.Context, store *Store, rng *rand.Rand, now time.Time) ([]*model.Company, error) {
	items := []struct {
		name, industry, website string
	}{
		{"Acme Corp", "Technology", "https://acme.example.com"},
		{"Globex", "Finance", "https://globex.example.com"},
		{"Initech", "Technology", ""},
		{"Umbrella Health", "Healthcare", "https://umbrella.example.com"},
		{"Stark Retail", "Retail", ""},
		{"Wayne Logistics", "Logistics", "https://wayne.example.com"},
		{"Hooli", "Technology", "https://hooli.example.com"},
		{"Vandelay Industries", "Manufacturing", ""},
		{"Soylent Foods", "", ""},
	}

	companies := []*model.Company{}
	for i, item := range items {
		company, err := store.Companies.InsertCompany(ctx, &model.Company{
			Name:      item.name,
			Industry:  item.industry,
			Website:   item.website,
			Verified:  i%3 != 2,
			CreatedAt: daysAgo(rng, now, 180),
		})
		if err != nil {
			return nil, fmt.Errorf("seed company %s: %w", item.name, err)
		}
		companies = append(companies, company)
	}
	return companies, nil
}

func seedProfiles(ctx context.Context, store *Store, rng *rand.Rand, now time.Time) ([]*model.Profile, error) {
	first := []string{"Ann", "Ben", "Cara", "Dan", "Eva", "Finn", "Gia", "Hugo", "Ida", "Jon", "Kim", "Leo"}
	last := []string{"Meyer", "Novak", "Okafor", "Patel", "Quinn", "Rossi", "", "Silva"}
	locations := []string{"Berlin", "London", "Lagos", "Mumbai", "Remote", ""}

	profiles := []*model.Profile{}
	for i := 0; i < 40; i++ {
		role := model.RoleCandidate
		if i%5 == 0 {
			role = model.RoleEmployer
		}
		profile, err := store.Profiles.InsertProfile(ctx, &model.Profile{
			FirstName: first[rng.Intn(len(first))],
			LastName:  last[rng.Intn(len(last))],
			Phone:     fmt.Sprintf("+49 151 %07d", rng.Intn(10000000)),
			Location:  locations[rng.Intn(len(locations))],
			Role:      role,
			CreatedAt: daysAgo(rng, now, 180),
		})
		if err != nil {
			return nil, fmt.Errorf("seed profile %d: %w", i, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func seedJobs(ctx context.Context, store *Store, rng *rand.Rand, now time.Time, companies []*model.Company) ([]*model.Job, error) {
	titles := []string{"Backend Engineer", "Product Designer", "Data Analyst", "Sales Manager", "Nurse", "Warehouse Lead", "Accountant", "Support Agent"}
	levels := []string{"entry", "mid", "senior"}

	jobs := []*model.Job{}
	for i := 0; i < 30; i++ {
		company := companies[rng.Intn(len(companies))]
		job, err := store.Jobs.InsertJob(ctx, &model.Job{
			Title:           titles[rng.Intn(len(titles))],
			CompanyID:       &company.ID,
			Location:        company.Name + " HQ",
			JobType:         model.JobTypes[rng.Intn(len(model.JobTypes))],
			ExperienceLevel: levels[rng.Intn(len(levels))],
			IsFeatured:      rng.Intn(4) == 0,
			CreatedAt:       daysAgo(rng, now, 180),
		})
		if err != nil {
			return nil, fmt.Errorf("seed job %d: %w", i, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func seedApplications(ctx context.Context, store *Store, rng *rand.Rand, now time.Time, profiles []*model.Profile, jobs []*model.Job) error {
	candidates := []uuid.UUID{}
	for _, profile := range profiles {
		if profile.Role == model.RoleCandidate {
			candidates = append(candidates, profile.ID)
		}
	}

	for i := 0; i < 60; i++ {
		_, err := store.Applications.InsertApplication(ctx, &model.Application{
			UserID:    candidates[rng.Intn(len(candidates))],
			JobID:     jobs[rng.Intn(len(jobs))].ID,
			Status:    model.ApplicationStatuses[rng.Intn(len(model.ApplicationStatuses))],
			AppliedAt: daysAgo(rng, now, 180),
		})
		if err != nil {
			return fmt.Errorf("seed application %d: %w", i, err)
		}
	}
	return nil
}

func seedContactMessages(ctx context.Context, store *Store, rng *rand.Rand, now time.Time) error {
	items := []struct {
		name, subject, message string
	}{
		{"Maria Lopez", "Account access", "I cannot log in to my employer account since yesterday."},
		{"Tom Becker", "Job posting", "How do I feature a job posting on the front page?"},
		{"Priya Shah", "Feedback", "The new search is great, but filtering by location would help a lot when browsing remote roles across several time zones."},
		{"Lars Holm", "Invoice", "Please send the invoice for last month again."},
		{"Nia Brown", "Verification", "Our company has been waiting for verification for a week."},
	}

	for i, item := range items {
		_, err := store.ContactMessages.InsertContactMessage(ctx, &model.ContactMessage{
			Name:      item.name,
			Email:     fmt.Sprintf("contact%d@example.com", i+1),
			Subject:   item.subject,
			Message:   item.message,
			Status:    model.MessageStatuses[i%len(model.MessageStatuses)],
			CreatedAt: daysAgo(rng, now, 30),
		})
		if err != nil {
			return fmt.Errorf("seed contact message %d: %w", i, err)
		}
	}
	return nil
}
