package java

import "strings"

// GenericVendor labels a runtime whose banner matches no known signature.
const GenericVendor = "Java"

// vendorSignatures is checked in order. Distribution names come before the
// generic "openjdk" and "java" substrings because most distribution banners
// contain those too.
var vendorSignatures = []struct {
	needles []string
	label   string
}{
	{[]string{"graalvm"}, "GraalVM"},
	{[]string{"corretto"}, "Amazon Corretto"},
	{[]string{"temurin", "adoptium"}, "Eclipse Temurin"},
	{[]string{"adoptopenjdk"}, "AdoptOpenJDK"},
	{[]string{"zulu"}, "Azul Zulu"},
	{[]string{"semeru"}, "IBM Semeru"},
	{[]string{"liberica"}, "BellSoft Liberica"},
	{[]string{"sapmachine"}, "SapMachine"},
	{[]string{"microsoft"}, "Microsoft OpenJDK"},
	{[]string{"openjdk"}, "OpenJDK"},
	{[]string{"java"}, "Oracle Java"},
}

// VendorFromBanner returns the vendor label for the first line of a
// version-query banner.
func VendorFromBanner(firstLine string) string {
	lower := strings.ToLower(firstLine)
	for _, sig := range vendorSignatures {
		for _, needle := range sig.needles {
			if strings.Contains(lower, needle) {
				return sig.label
			}
		}
	}
	return GenericVendor
}

// Vendors lists every label VendorFromBanner can return, in priority order.
func Vendors() []string {
	out := make([]string, 0, len(vendorSignatures)+1)
	for _, sig := range vendorSignatures {
		out = append(out, sig.label)
	}
	return append(out, GenericVendor)
}
