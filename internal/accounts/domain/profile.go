package domain

// Gender codes accepted for the profile gender field.
var Genders = []string{"M", "F", "O", "N"} // male, female, other, prefer not to say

// BloodGroups accepted for the profile blood-group field.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// ValidGender reports whether g is an accepted gender code.
func ValidGender(g string) bool { return contains(Genders, g) }

// ValidBloodGroup reports whether bg is an accepted blood group.
func ValidBloodGroup(bg string) bool { return contains(BloodGroups, bg) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
