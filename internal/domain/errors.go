package domain

import "errors"

// Kind clasifica un error de dominio para que los adaptadores (HTTP, CLI)
// puedan mapearlo sin comparar strings.
type Kind int

const (
	// KindUnknown errores sin clasificar (no deberían salir del core).
	KindUnknown Kind = iota
	// KindNotFound "<Entity> Does Not Exist".
	KindNotFound
	// KindConflict "<Entity> Already Exists".
	KindConflict
	// KindPreconditionFailed reglas de negocio: basket sin asignar, temperatura inconsistente.
	KindPreconditionFailed
	// KindPersistenceFailure el colaborador de persistencia falló; envuelve el error subyacente.
	KindPersistenceFailure
)

// String devuelve el nombre del Kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindPreconditionFailed:
		return "PRECONDITION_FAILED"
	case KindPersistenceFailure:
		return "PERSISTENCE_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// StoreError es el único tipo de error del dominio: lleva la operación que
// falló ("Provision Inventory"), el Kind y la razón legible
// ("Product and Shelf Temperature Is Not Consistent").
type StoreError struct {
	Op     string
	Kind   Kind
	Reason string
	Err    error // causa subyacente, solo para KindPersistenceFailure
}

// Error implementa error con el formato "<op>: <reason>".
func (e *StoreError) Error() string {
	return e.Op + ": " + e.Reason
}

// Unwrap expone la causa subyacente para errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotFound construye un error "<entity> Does Not Exist".
func NotFound(op, entity string) *StoreError {
	return &StoreError{Op: op, Kind: KindNotFound, Reason: entity + " Does Not Exist"}
}

// Conflict construye un error "<entity> Already Exists".
func Conflict(op, entity string) *StoreError {
	return &StoreError{Op: op, Kind: KindConflict, Reason: entity + " Already Exists"}
}

// Precondition construye un error de regla de negocio con razón literal.
func Precondition(op, reason string) *StoreError {
	return &StoreError{Op: op, Kind: KindPreconditionFailed, Reason: reason}
}

// Persistence envuelve un fallo del colaborador de persistencia.
func Persistence(op, detail string, err error) *StoreError {
	reason := detail
	if err != nil {
		reason = detail + ": " + err.Error()
	}
	return &StoreError{Op: op, Kind: KindPersistenceFailure, Reason: reason, Err: err}
}

// KindOf devuelve el Kind de un error de dominio, o KindUnknown si no lo es.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// Errores de autenticación/usuarios (sin Kind: pertenecen al adaptador de auth).
var (
	ErrUserNotFound       = errors.New("user does not exist")
	ErrEmailAlreadyExists = errors.New("user email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
