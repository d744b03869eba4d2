package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// stubColisRepo is an in-memory ColisRepository.
type stubColisRepo struct {
	colis      map[string]*domain.Colis
	lastFilter ports.ListColisFilter
	nextID     int
}

func newStubColisRepo() *stubColisRepo {
	return &stubColisRepo{colis: map[string]*domain.Colis{}}
}

func (r *stubColisRepo) Create(ctx context.Context, c *domain.Colis) error {
	r.nextID++
	c.ID = fmt.Sprintf("c%03d", r.nextID)
	r.colis[c.ID] = c
	return nil
}

func (r *stubColisRepo) FindByID(ctx context.Context, id, clientID string) (*domain.Colis, error) {
	c, ok := r.colis[id]
	if !ok {
		return nil, domain.ErrColisNotFound
	}
	if clientID != "" && c.ClientID != clientID {
		return nil, domain.ErrColisNotFound
	}
	return c, nil
}

func (r *stubColisRepo) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Colis, error) {
	for _, c := range r.colis {
		if c.IdempotencyKey == key {
			return c, nil
		}
	}
	return nil, domain.ErrColisNotFound
}

func (r *stubColisRepo) List(ctx context.Context, filter ports.ListColisFilter) ([]*domain.Colis, int64, error) {
	r.lastFilter = filter
	out := []*domain.Colis{}
	for _, c := range r.colis {
		if filter.ClientID != "" && c.ClientID != filter.ClientID {
			continue
		}
		if filter.LivreurID != "" && c.LivreurID != filter.LivreurID {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *stubColisRepo) Update(ctx context.Context, c *domain.Colis) error {
	if _, ok := r.colis[c.ID]; !ok {
		return domain.ErrColisNotFound
	}
	r.colis[c.ID] = c
	return nil
}

func (r *stubColisRepo) UpdateStatus(ctx context.Context, id string, status domain.ColisStatus, ts time.Time, commentaire string) error {
	c, ok := r.colis[id]
	if !ok {
		return domain.ErrColisNotFound
	}
	c.Status = status
	c.Historique = append(c.Historique, domain.HistoriqueEntry{Status: status, Timestamp: ts, Commentaire: commentaire})
	return nil
}

func (r *stubColisRepo) AssignLivreur(ctx context.Context, colisID, livreurID string) error {
	c, ok := r.colis[colisID]
	if !ok {
		return domain.ErrColisNotFound
	}
	c.LivreurID = livreurID
	c.Status = domain.StatusPreparation
	return nil
}

func (r *stubColisRepo) Delete(ctx context.Context, id string) error {
	delete(r.colis, id)
	return nil
}

func createInput() ports.CreateColisInput {
	return ports.CreateColisInput{
		ClientID:    "client-1",
		Poids:       2.5,
		Description: "books",
		Destination: "12 rue de la Paix, Paris",
		Priority:    "NORMAL",
		CodePostal:  "75002",
		Destinataire: ports.DestinataireInput{
			Nom:       "Doe",
			Prenom:    "Jane",
			Telephone: "+33600000000",
			Adresse:   "12 rue de la Paix, Paris",
		},
	}
}

func TestCreateColis(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(result.Reference, "CX-") || len(result.Reference) != 11 {
		t.Errorf("reference = %q, want CX-XXXXXXXX", result.Reference)
	}
	if result.Status != string(domain.StatusCree) {
		t.Errorf("status = %q, want CREE", result.Status)
	}
	if result.AlreadyExisted {
		t.Error("fresh creation flagged as replay")
	}

	stored := repo.colis[result.ID]
	if stored == nil {
		t.Fatal("colis not persisted")
	}
	if len(stored.Historique) != 1 || stored.Historique[0].Status != domain.StatusCree {
		t.Errorf("historique = %+v", stored.Historique)
	}
	if stored.Zone.CodePostal != "75002" {
		t.Errorf("zone = %+v", stored.Zone)
	}
}

func TestCreateColisEstimatedDelivery(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	normal, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create normal: %v", err)
	}

	express := createInput()
	express.Priority = "EXPRESS"
	fast, err := svc.Create(context.Background(), express)
	if err != nil {
		t.Fatalf("Create express: %v", err)
	}

	if !fast.EstimatedAt.Before(normal.EstimatedAt) {
		t.Errorf("express estimate %v not before normal %v", fast.EstimatedAt, normal.EstimatedAt)
	}
	if h := fast.EstimatedAt.Hour(); h != 18 {
		t.Errorf("estimate hour = %d, want 18", h)
	}
}

func TestCreateColisIdempotentReplay(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	input := createInput()
	input.IdempotencyKey = "key-1"

	first, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	second, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}

	if !second.AlreadyExisted {
		t.Error("replay not flagged")
	}
	if second.ID != first.ID || second.Reference != first.Reference {
		t.Errorf("replay returned different colis: %+v vs %+v", first, second)
	}
	if len(repo.colis) != 1 {
		t.Errorf("colis count = %d, want 1", len(repo.colis))
	}
}

func TestGetColisClientScoped(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), ports.GetColisInput{
		ID: result.ID, Role: domain.RoleClient, ClientID: "client-1",
	}); err != nil {
		t.Errorf("owner Get: %v", err)
	}

	if _, err := svc.Get(context.Background(), ports.GetColisInput{
		ID: result.ID, Role: domain.RoleClient, ClientID: "client-2",
	}); !errors.Is(err, domain.ErrColisNotFound) {
		t.Errorf("foreign client Get err = %v, want ErrColisNotFound", err)
	}

	// Staff see everything.
	if _, err := svc.Get(context.Background(), ports.GetColisInput{
		ID: result.ID, Role: domain.RoleManager, ClientID: "whoever",
	}); err != nil {
		t.Errorf("manager Get: %v", err)
	}
}

func TestListScopingAndPageClamping(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListColisInput{
		Role:     domain.RoleClient,
		ClientID: "client-1",
		Limit:    5000,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.ClientID != "client-1" {
		t.Error("client role must be scoped to its own colis")
	}
	if repo.lastFilter.Limit != 100 {
		t.Errorf("limit = %d, want clamped to 100", repo.lastFilter.Limit)
	}
	if repo.lastFilter.Page != 1 {
		t.Errorf("page = %d, want defaulted to 1", repo.lastFilter.Page)
	}
	if page.Size != 100 {
		t.Errorf("page size = %d", page.Size)
	}

	if _, err := svc.List(context.Background(), ports.ListColisInput{
		Role:      domain.RoleLivreur,
		LivreurID: "liv-1",
	}); err != nil {
		t.Fatalf("List livreur: %v", err)
	}
	if repo.lastFilter.LivreurID != "liv-1" || repo.lastFilter.ClientID != "" {
		t.Errorf("livreur scoping: %+v", repo.lastFilter)
	}
}

func TestUpdateColisClientRules(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	update := ports.UpdateColisInput{
		ID:          result.ID,
		Poids:       3.0,
		Description: "more books",
		Destination: "34 avenue Foch, Lyon",
		Role:        domain.RoleClient,
		ClientID:    "client-1",
		Destinataire: ports.DestinataireInput{
			Nom: "Doe", Prenom: "Jane", Telephone: "+33600000000", Adresse: "34 avenue Foch, Lyon",
		},
	}

	updated, err := svc.Update(context.Background(), update)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "more books" || updated.Poids != 3.0 {
		t.Errorf("updated = %+v", updated)
	}

	// Once preparation starts, the client can no longer edit.
	repo.colis[result.ID].Status = domain.StatusPreparation
	if _, err := svc.Update(context.Background(), update); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}

	// Staff still can.
	update.Role = domain.RoleManager
	if _, err := svc.Update(context.Background(), update); err != nil {
		t.Errorf("manager Update: %v", err)
	}
}

func TestChangeStatusTransitions(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.ChangeStatus(context.Background(), ports.ChangeStatusInput{
		ID: result.ID, Status: "PREPARATION", Role: domain.RoleManager,
	}); err != nil {
		t.Fatalf("CREE→PREPARATION: %v", err)
	}

	// Skipping EN_COURS is not allowed.
	err = svc.ChangeStatus(context.Background(), ports.ChangeStatusInput{
		ID: result.ID, Status: "LIVRE", Role: domain.RoleManager,
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}

	// Unknown status rejected outright.
	err = svc.ChangeStatus(context.Background(), ports.ChangeStatusInput{
		ID: result.ID, Status: "TELEPORTED", Role: domain.RoleManager,
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestChangeStatusLivreurOwnAssignmentsOnly(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	repo.colis[result.ID].Status = domain.StatusEnCours
	repo.colis[result.ID].LivreurID = "liv-1"

	err = svc.ChangeStatus(context.Background(), ports.ChangeStatusInput{
		ID: result.ID, Status: "LIVRE", Role: domain.RoleLivreur, LivreurID: "liv-2",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign livreur err = %v, want ErrForbidden", err)
	}

	if err := svc.ChangeStatus(context.Background(), ports.ChangeStatusInput{
		ID: result.ID, Status: "LIVRE", Role: domain.RoleLivreur, LivreurID: "liv-1",
	}); err != nil {
		t.Fatalf("assigned livreur: %v", err)
	}
	if repo.colis[result.ID].Status != domain.StatusLivre {
		t.Errorf("status = %s, want LIVRE", repo.colis[result.ID].Status)
	}
}

func TestAssignLivreurOnlyBeforeTransit(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewColisService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.AssignLivreur(context.Background(), result.ID, "liv-1"); err != nil {
		t.Fatalf("AssignLivreur: %v", err)
	}
	if repo.colis[result.ID].LivreurID != "liv-1" {
		t.Error("livreur not assigned")
	}

	repo.colis[result.ID].Status = domain.StatusEnCours
	if err := svc.AssignLivreur(context.Background(), result.ID, "liv-2"); !errors.Is(err, domain.ErrColisNotAssignable) {
		t.Errorf("err = %v, want ErrColisNotAssignable", err)
	}
}
