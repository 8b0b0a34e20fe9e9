package validator

import "strings"

// stateNames maps the two-digit GST state code to the state or union territory.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// StateForCode returns the state name for a GST state code.
func StateForCode(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// StateFromGSTIN returns the state encoded in the first two characters of a
// GSTIN, or "" when it cannot be determined.
func StateFromGSTIN(gstin string) string {
	gstin = strings.TrimSpace(gstin)
	if len(gstin) < 2 {
		return ""
	}
	return stateNames[gstin[:2]]
}

// CodeForState is the reverse of StateForCode, matching case-insensitively.
func CodeForState(name string) string {
	name = strings.TrimSpace(name)
	for code, n := range stateNames {
		if strings.EqualFold(n, name) {
			return code
		}
	}
	return ""
}
