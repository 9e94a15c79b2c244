package domain_test

import (
	"testing"

	"github.com/spec-kit/atm-service/internal/domain"
)

func TestPrincipalCanOperate(t *testing.T) {
	customer := domain.Principal{UserID: "u1", Role: domain.RoleCustomer}
	admin := domain.Principal{UserID: "adm", Role: domain.RoleAdministrator}

	if !customer.CanOperate("u1") {
		t.Error("customer denied on own account")
	}
	if customer.CanOperate("u2") {
		t.Error("customer allowed on another customer's account")
	}
	if !admin.CanOperate("u1") {
		t.Error("administrator denied on customer account")
	}
	if admin.Admin() != true || customer.Admin() != false {
		t.Error("Admin() does not follow role")
	}
}
