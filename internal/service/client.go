package service

import (
	"context"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type clientService struct {
	clients repository.ClientRepository
}

func NewClientService(clients repository.ClientRepository) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) error {
	if err := validatePerson(client.RUN, client.Name, client.Surname, client.Email, client.Cellphone); err != nil {
		return err
	}
	client.RUN = NormalizeRUN(client.RUN)
	client.Cellphone = ReformatCellphone(client.Cellphone)
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}
	client.Debt = 0
	client.ActiveLoans = 0

	if err := s.clients.Create(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (s *clientService) GetClient(ctx context.Context, run string) (*domain.Client, error) {
	return s.clients.GetByRUN(ctx, NormalizeRUN(run))
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	client.RUN = NormalizeRUN(client.RUN)
	stored, err := s.clients.GetByRUN(ctx, client.RUN)
	if err != nil {
		return err
	}

	if client.Name != "" {
		if !nameRegex.MatchString(client.Name) {
			return domain.InvalidInputf("invalid name %q", client.Name)
		}
		stored.Name = client.Name
	}
	if client.Surname != "" {
		if !nameRegex.MatchString(client.Surname) {
			return domain.InvalidInputf("invalid surname %q", client.Surname)
		}
		stored.Surname = client.Surname
	}
	if client.Email != "" {
		if !emailRegex.MatchString(client.Email) {
			return domain.InvalidInputf("invalid email %q", client.Email)
		}
		stored.Email = client.Email
	}
	if client.Cellphone != "" {
		if !validCellphone(client.Cellphone) {
			return domain.InvalidInputf("invalid cellphone %q", client.Cellphone)
		}
		stored.Cellphone = ReformatCellphone(client.Cellphone)
	}
	if client.Status != "" {
		if client.Status != domain.ClientStatusActive && client.Status != domain.ClientStatusRestricted {
			return domain.InvalidInputf("unknown client status %q", client.Status)
		}
		stored.Status = client.Status
	}
	// Manual debt correction path; a negative value means leave the
	// stored debt unchanged. Restriction is lifted only through an
	// explicit status update above, never implicitly.
	if client.Debt >= 0 {
		stored.Debt = client.Debt
	}

	if err := s.clients.Update(ctx, stored); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	*client = *stored
	return nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) ListClientsByStatus(ctx context.Context, status domain.ClientStatus) ([]domain.Client, error) {
	if status != domain.ClientStatusActive && status != domain.ClientStatusRestricted {
		return nil, domain.InvalidInputf("unknown client status %q", status)
	}
	return s.clients.ListByStatus(ctx, status)
}

func (s *clientService) DeleteClient(ctx context.Context, run string) error {
	return s.clients.Delete(ctx, NormalizeRUN(run))
}
