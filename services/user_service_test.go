package services

import (
	"errors"
	"testing"

	"cobrodigital/models"
	"cobrodigital/utils"
)

func TestCreateCobradorAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	err := svc.CreateCobrador(CreateCobradorDTO{
		Username: "c1",
		Password: "secreto1",
		Nombre:   "Carlos",
		Zona:     "Sur",
	})
	if err != nil {
		t.Fatalf("CreateCobrador failed: %v", err)
	}

	profile, err := svc.Authenticate("c1", "secreto1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if profile.ID != "c1" {
		t.Errorf("wrong id: got %q want %q", profile.ID, "c1")
	}
	if profile.Nombre != "Carlos" {
		t.Errorf("wrong nombre: got %q want %q", profile.Nombre, "Carlos")
	}
	if profile.Role != "cobrador" {
		t.Errorf("wrong role: got %q want %q", profile.Role, "cobrador")
	}
	if profile.Zona != "Sur" {
		t.Errorf("wrong zona: got %q want %q", profile.Zona, "Sur")
	}
}

func TestCreateCobradorStoresOnlyHash(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if err := svc.CreateCobrador(CreateCobradorDTO{
		Username: "c1",
		Password: "secreto1",
		Nombre:   "Carlos",
	}); err != nil {
		t.Fatalf("CreateCobrador failed: %v", err)
	}

	user, err := svc.FindByUsername("c1")
	if err != nil {
		t.Fatalf("FindByUsername failed: %v", err)
	}
	if user.HashedPassword == "secreto1" {
		t.Error("password stored in plain text")
	}
	if !utils.CheckPassword("secreto1", user.HashedPassword) {
		t.Error("stored hash does not verify the original password")
	}
	if user.Role != models.RoleCobrador {
		t.Errorf("role not fixed to cobrador: got %q", user.Role)
	}
}

func TestCreateCobradorDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	dto := CreateCobradorDTO{Username: "c1", Password: "pw12345", Nombre: "Carlos"}
	if err := svc.CreateCobrador(dto); err != nil {
		t.Fatalf("first CreateCobrador failed: %v", err)
	}

	err := svc.CreateCobrador(dto)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Повторная попытка не должна ничего записать
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("duplicate create wrote a row: got %d users want 1", count)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	mustCreateCobrador(t, db, "c1")

	// Неверный пароль и неизвестный пользователь дают одну и ту же ошибку
	if _, err := svc.Authenticate("c1", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Authenticate("nope", "pw12345"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown user: expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	created := mustCreateCobrador(t, db, "c1")
	oldHash := created.HashedPassword

	// Без пароля: имя и зона перезаписываются, хеш не трогается
	user, err := svc.UpdateProfile("c1", UpdateProfileDTO{
		Nombre: "Nuevo Nombre",
		Zona:   "Oriente",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if user.Nombre != "Nuevo Nombre" || user.Zona != "Oriente" {
		t.Errorf("profile not updated: nombre=%q zona=%q", user.Nombre, user.Zona)
	}
	if user.HashedPassword != oldHash {
		t.Error("password hash changed although no password was supplied")
	}

	// С паролем: хеш заменяется
	user, err = svc.UpdateProfile("c1", UpdateProfileDTO{
		Nombre:   "Nuevo Nombre",
		Zona:     "Oriente",
		Password: "otra-clave",
	})
	if err != nil {
		t.Fatalf("UpdateProfile with password failed: %v", err)
	}
	if user.HashedPassword == oldHash {
		t.Error("password hash not replaced")
	}
	if !utils.CheckPassword("otra-clave", user.HashedPassword) {
		t.Error("new password does not verify")
	}
}

func TestUpdateProfileNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.UpdateProfile("ghost", UpdateProfileDTO{Nombre: "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCobradoresFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	// Админ не должен попадать в список
	admin := &models.User{
		Username:       "admin",
		HashedPassword: "x",
		Role:           models.RoleAdmin,
		Nombre:         "Administrador Principal",
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	mustCreateCobrador(t, db, "c1")
	mustCreateCobrador(t, db, "c2")

	cobradores, err := svc.ListCobradores()
	if err != nil {
		t.Fatalf("ListCobradores failed: %v", err)
	}
	if len(cobradores) != 2 {
		t.Fatalf("wrong count: got %d want 2", len(cobradores))
	}
	if cobradores[0].Username != "c1" || cobradores[1].Username != "c2" {
		t.Errorf("wrong order: got %q, %q", cobradores[0].Username, cobradores[1].Username)
	}
	for _, c := range cobradores {
		if c.Role != "cobrador" {
			t.Errorf("unexpected role in list: %q", c.Role)
		}
	}
}
