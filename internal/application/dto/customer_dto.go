package dto

// CreateCustomerRequestV1 elemento del body de POST /api/v1/customers (se envía un arreglo).
type CreateCustomerRequestV1 struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
}

// UpdateCustomerRequestV1 body de PUT /api/v1/customers: reemplazo completo.
type UpdateCustomerRequestV1 struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
}

// CustomerResponse cliente en respuestas v1.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CreateCustomerRequestV2 elemento del body de POST /api/v2/customers. El teléfono es opcional.
type CreateCustomerRequestV2 struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// UpdateCustomerRequestV2 body de PATCH /api/v2/customers: actualización parcial.
// Un campo nil conserva el valor almacenado; un nombre presente no puede venir en blanco.
type UpdateCustomerRequestV2 struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,notblank,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,notblank,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// CustomerResponseV2 cliente en respuestas v2 (sin teléfono).
type CustomerResponseV2 struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
