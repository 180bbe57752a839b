package constants

// AccountRole membedakan empat tabel akun (admin, tentor, siswa, mitra).
// Dipakai sebagai tag bertipe di klaim JWT dan lookup akun — bukan switch
// string bebas.
type AccountRole string

const (
	RoleAdmin  AccountRole = "admin"
	RoleTentor AccountRole = "tentor"
	RoleSiswa  AccountRole = "siswa"
	RoleMitra  AccountRole = "mitra"
)

func (r AccountRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTentor, RoleSiswa, RoleMitra:
		return true
	}
	return false
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur ini."
	ErrOnlyTentorCanAccess = "❌ Hanya tentor yang boleh mengakses fitur ini."
)
