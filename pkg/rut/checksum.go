package rut

const (
	// PersonMin is the smallest body classified as a person.
	PersonMin = 1_000_000
	// CompanyMin is the smallest body classified as a company.
	CompanyMin = 50_000_000
	// CompanyMax is the exclusive upper bound used when generating company RUTs.
	CompanyMax = 100_000_000
)

// ChecksumByte returns the Modulo 11 check character of num as a byte.
// num must be non-negative.
func ChecksumByte(num int) byte {
	sum, weight := 0, 2
	for ; num > 0; num /= 10 {
		sum += (num % 10) * weight
		if weight++; weight > 7 {
			weight = 2
		}
	}

	switch d := 11 - sum%11; d {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + d)
	}
}

// Checksum returns the check character of num: "0" to "9" or "K".
func Checksum(num int) string {
	return string(ChecksumByte(num))
}

// Rectify returns the valid RUT for the given body.
func Rectify(num int) RUT {
	return New(num, Checksum(num))
}

func isPersonNum(num int) bool {
	return num >= PersonMin && num < CompanyMin
}

func isCompanyNum(num int) bool {
	return num >= CompanyMin
}
