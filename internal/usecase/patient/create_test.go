package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/infra/memstore"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

func TestCreatePatient(t *testing.T) {
	store := memstore.New()
	cab := store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac"})
	uc := NewCreatePatient(store, nil)

	p, err := uc.Execute(context.Background(), CreatePatientInput{
		FirstName: " Jean ",
		LastName:  "Dupont",
		Phone:     "+41791234567",
		Email:     "   ",
		City:      "Lausanne",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if p.ID == "" || !p.IsActive || p.CabinetID != cab.ID {
		t.Errorf("unexpected patient %+v", p)
	}
	if p.FirstName != "Jean" {
		t.Errorf("FirstName = %q, want trimmed", p.FirstName)
	}
	if p.Email != nil || p.DentistID != nil || p.DateOfBirth != nil {
		t.Errorf("blank optionals should be nil: %+v", p)
	}
	if p.City == nil || *p.City != "Lausanne" {
		t.Errorf("City = %v", p.City)
	}
}

func TestCreatePatientMissingFieldsInsertsNothing(t *testing.T) {
	store := memstore.New()
	store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac"})
	uc := NewCreatePatient(store, nil)

	inputs := map[string]CreatePatientInput{
		"no first name": {LastName: "Dupont", Phone: "+41791234567"},
		"no last name":  {FirstName: "Jean", Phone: "+41791234567"},
		"no phone":      {FirstName: "Jean", LastName: "Dupont"},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), in)
			if httperr.Status(err) != 400 {
				t.Fatalf("status = %d, want 400 (err %v)", httperr.Status(err), err)
			}
			if !httperr.IsBusiness(err, "missing_required_fields") {
				t.Errorf("err = %v", err)
			}
		})
	}

	if n := len(store.Patients()); n != 0 {
		t.Errorf("patients inserted = %d, want 0", n)
	}
}

func TestCreatePatientWithoutCabinet(t *testing.T) {
	store := memstore.New()
	uc := NewCreatePatient(store, nil)

	_, err := uc.Execute(context.Background(), CreatePatientInput{
		FirstName: "Jean", LastName: "Dupont", Phone: "+41791234567",
	})

	if !httperr.IsBusiness(err, "no_cabinet") || httperr.Status(err) != 400 {
		t.Fatalf("err = %v, want no_cabinet", err)
	}
	var be httperr.BusinessError
	if !errors.As(err, &be) || be.Message != clinic.MsgNoCabinet {
		t.Errorf("message = %q", be.Message)
	}
}

func TestCreatePatientUsesSessionCabinet(t *testing.T) {
	store := memstore.New()
	store.AddCabinet(models.Cabinet{Name: "First"})
	second := store.AddCabinet(models.Cabinet{Name: "Second"})
	uc := NewCreatePatient(store, nil)

	p, err := uc.Execute(context.Background(), CreatePatientInput{
		CabinetID: second.ID,
		FirstName: "Jean", LastName: "Dupont", Phone: "+41791234567",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if p.CabinetID != second.ID {
		t.Errorf("CabinetID = %s, want session cabinet %s", p.CabinetID, second.ID)
	}
}

func TestCreatePatientUnknownDentist(t *testing.T) {
	store := memstore.New()
	store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac"})
	uc := NewCreatePatient(store, nil)

	_, err := uc.Execute(context.Background(), CreatePatientInput{
		FirstName: "Jean", LastName: "Dupont", Phone: "+41791234567",
		DentistID: "00000000-0000-0000-0000-000000000000",
	})
	if !httperr.IsBusiness(err, "dentist_not_found") || httperr.Status(err) != 400 {
		t.Errorf("err = %v", err)
	}
}

func TestCreatePatientInvalidBirthDate(t *testing.T) {
	store := memstore.New()
	store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac"})
	uc := NewCreatePatient(store, nil)

	_, err := uc.Execute(context.Background(), CreatePatientInput{
		FirstName: "Jean", LastName: "Dupont", Phone: "+41791234567",
		DateOfBirth: "01/02/1980",
	})
	if !httperr.IsBusiness(err, "invalid_date_of_birth") {
		t.Errorf("err = %v", err)
	}
}

func TestListPatientsNewestFirst(t *testing.T) {
	store := memstore.New()
	cab := store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac"})
	store.AddPatient(models.Patient{CabinetID: cab.ID, FirstName: "Old", IsActive: true})
	store.AddPatient(models.Patient{CabinetID: cab.ID, FirstName: "Gone", IsActive: false})
	store.AddPatient(models.Patient{CabinetID: cab.ID, FirstName: "New", IsActive: true})

	list, err := NewListPatients(store).Execute(context.Background(), "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(list) != 2 || list[0].FirstName != "New" || list[1].FirstName != "Old" {
		t.Errorf("list = %+v", list)
	}
}

func TestCreatePatientRejectsOtherCabinetDentist(t *testing.T) {
	store := memstore.New()
	store.AddCabinet(models.Cabinet{Name: "Cabinet du Lac"})
	other := store.AddCabinet(models.Cabinet{Name: "Cabinet des Alpes"})
	d := store.AddDentist(models.Dentist{CabinetID: other.ID, FirstName: "Luc", LastName: "Favre", IsActive: true})
	uc := NewCreatePatient(store, nil)

	// Anonymous callers land in the oldest cabinet, which is not the dentist's.
	_, err := uc.Execute(context.Background(), CreatePatientInput{
		FirstName: "Jean", LastName: "Dupont", Phone: "+41791234567",
		DentistID: d.ID,
	})
	if !httperr.IsBusiness(err, "dentist_not_found") || httperr.Status(err) != 400 {
		t.Fatalf("err = %v", err)
	}
	if len(store.Patients()) != 0 {
		t.Error("no patient should be inserted")
	}

	p, err := uc.Execute(context.Background(), CreatePatientInput{
		CabinetID: other.ID,
		FirstName: "Jean", LastName: "Dupont", Phone: "+41791234567",
		DentistID: d.ID,
	})
	if err != nil {
		t.Fatalf("same cabinet: %v", err)
	}
	if p.DentistID == nil || *p.DentistID != d.ID {
		t.Errorf("DentistID = %v", p.DentistID)
	}
}
