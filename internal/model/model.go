package model

// EmployeeRecord is one row of the externally sourced master roster.
// The roster is read-only after load and is never persisted by horex.
type EmployeeRecord struct {
	ReportsToLeader      string `json:"reportsToLeader"`
	ReportsToCoordinator string `json:"reportsToCoordinator"`
	FullName             string `json:"fullName"`
	Identifier           string `json:"identifier"`
	Code                 string `json:"code"`
	Position             string `json:"position"`
}

// OvertimeEntry is one accepted ledger record. Employee fields are a
// denormalized snapshot taken at acceptance time; later roster changes
// never affect past entries. The struct is comparable, and full-tuple
// equality is the record's only identity.
//
// JSON keys match the persisted ledger format of the original form
// (localStorage slot "horasExtrasData").
type OvertimeEntry struct {
	RegisteredBy string `json:"quienRegistra"`
	EmployeeID   string `json:"dniCe"`
	FullName     string `json:"apellidosNombres"`
	Code         string `json:"codigo"`
	Position     string `json:"puesto"`
	EntryDate    string `json:"fechaIngreso"`
	EntryTime    string `json:"ingreso"`
	ExitDate     string `json:"fechaSalida"`
	ExitTime     string `json:"salida"`
	Note         string `json:"observacion"`
}

// Column keys for tabular renderings of the ledger, in report order.
const (
	ColRegisteredBy = "quienRegistra"
	ColEmployeeID   = "dniCe"
	ColFullName     = "apellidosNombres"
	ColCode         = "codigo"
	ColPosition     = "puesto"
	ColEntryDate    = "fechaIngreso"
	ColEntryTime    = "ingreso"
	ColExitDate     = "fechaSalida"
	ColExitTime     = "salida"
	ColNote         = "observacion"
)

// Field returns the entry value for a column key, or "" for unknown keys.
func (e OvertimeEntry) Field(key string) string {
	switch key {
	case ColRegisteredBy:
		return e.RegisteredBy
	case ColEmployeeID:
		return e.EmployeeID
	case ColFullName:
		return e.FullName
	case ColCode:
		return e.Code
	case ColPosition:
		return e.Position
	case ColEntryDate:
		return e.EntryDate
	case ColEntryTime:
		return e.EntryTime
	case ColExitDate:
		return e.ExitDate
	case ColExitTime:
		return e.ExitTime
	case ColNote:
		return e.Note
	}
	return ""
}
