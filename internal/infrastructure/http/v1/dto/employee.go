package dto

import (
	"cableworks/internal/core/entity"
	"cableworks/internal/core/types"
	"cableworks/internal/domain/catalogs/employee"
)

// --- Request DTOs ---

// CreateEmployeeRequest is the request body for creating an employee.
type CreateEmployeeRequest struct {
	Code          string              `json:"code"`
	Name          string              `json:"name" binding:"required"`
	Designation   *string             `json:"designation"`
	Department    employee.Department `json:"department"`
	PAN           *string             `json:"pan"`
	BankAccount   *string             `json:"bankAccount"`
	BankIFSC      *string             `json:"bankIfsc"`
	BasicSalary   types.Money         `json:"basicSalary"`
	DateOfJoining *string             `json:"dateOfJoining"`
	Phone         *string             `json:"phone"`
	Email         *string             `json:"email"`
	ParentID      *string             `json:"parentId"`
	IsFolder      bool                `json:"isFolder"`
	Attributes    entity.Attributes   `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateEmployeeRequest) ToEntity() *employee.Employee {
	e := employee.NewEmployee(r.Code, r.Name, r.BasicSalary)
	e.Designation = r.Designation
	e.Department = r.Department
	e.PAN = r.PAN
	e.BankAccount = r.BankAccount
	e.BankIFSC = r.BankIFSC
	e.DateOfJoining = r.DateOfJoining
	e.Phone = r.Phone
	e.Email = r.Email
	e.ParentID = r.ParentID
	e.IsFolder = r.IsFolder
	e.Attributes = r.Attributes
	return e
}

// UpdateEmployeeRequest is the request body for updating an employee.
type UpdateEmployeeRequest struct {
	Code          string              `json:"code"`
	Name          string              `json:"name" binding:"required"`
	Designation   *string             `json:"designation"`
	Department    employee.Department `json:"department"`
	PAN           *string             `json:"pan"`
	BankAccount   *string             `json:"bankAccount"`
	BankIFSC      *string             `json:"bankIfsc"`
	BasicSalary   types.Money         `json:"basicSalary"`
	DateOfJoining *string             `json:"dateOfJoining"`
	Phone         *string             `json:"phone"`
	Email         *string             `json:"email"`
	ParentID      *string             `json:"parentId"`
	IsFolder      bool                `json:"isFolder"`
	Attributes    entity.Attributes   `json:"attributes"`
	Version       int                 `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(e *employee.Employee) {
	e.Code = r.Code
	e.Name = r.Name
	e.Designation = r.Designation
	e.Department = r.Department
	e.PAN = r.PAN
	e.BankAccount = r.BankAccount
	e.BankIFSC = r.BankIFSC
	e.BasicSalary = r.BasicSalary
	e.DateOfJoining = r.DateOfJoining
	e.Phone = r.Phone
	e.Email = r.Email
	e.ParentID = r.ParentID
	e.IsFolder = r.IsFolder
	e.Attributes = r.Attributes
	e.Version = r.Version
}

// --- Response DTOs ---

// EmployeeResponse is the response body for an employee.
type EmployeeResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	Name          string              `json:"name"`
	Designation   *string             `json:"designation,omitempty"`
	Department    employee.Department `json:"department"`
	PAN           *string             `json:"pan,omitempty"`
	BankAccount   *string             `json:"bankAccount,omitempty"`
	BankIFSC      *string             `json:"bankIfsc,omitempty"`
	BasicSalary   types.Money         `json:"basicSalary"`
	DateOfJoining *string             `json:"dateOfJoining,omitempty"`
	Phone         *string             `json:"phone,omitempty"`
	Email         *string             `json:"email,omitempty"`
	ParentID      *string             `json:"parentId,omitempty"`
	IsFolder      bool                `json:"isFolder"`
	DeletionMark  bool                `json:"deletionMark"`
	Version       int                 `json:"version"`
	Attributes    entity.Attributes   `json:"attributes,omitempty"`
}

// FromEmployee creates response DTO from domain entity.
func FromEmployee(e *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:            e.ID.String(),
		Code:          e.Code,
		Name:          e.Name,
		Designation:   e.Designation,
		Department:    e.Department,
		PAN:           e.PAN,
		BankAccount:   e.BankAccount,
		BankIFSC:      e.BankIFSC,
		BasicSalary:   e.BasicSalary,
		DateOfJoining: e.DateOfJoining,
		Phone:         e.Phone,
		Email:         e.Email,
		ParentID:      e.ParentID,
		IsFolder:      e.IsFolder,
		DeletionMark:  e.DeletionMark,
		Version:       e.Version,
		Attributes:    e.Attributes,
	}
}
