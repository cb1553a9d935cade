package sire

import (
	"strings"
	"unicode/utf8"
)

// colombianCities maps normalized Colombian city names to DANE city codes.
// Used to recognize domestic destinations; the city's own code is never
// emitted, a positive hit resolves the destination to Colombia.
var colombianCities = map[string]string{
	// Department capitals and major cities
	"MEDELLIN": "5001", "MEDELLÍN": "5001",
	"BOGOTA": "11001", "BOGOTÁ": "11001", "SANTA FE DE BOGOTA": "11001",
	"CALI": "76001", "SANTIAGO DE CALI": "76001",
	"BARRANQUILLA": "8001",
	"CARTAGENA":    "13001", "CARTAGENA DE INDIAS": "13001",
	"SANTA MARTA":  "47001",
	"BUCARAMANGA":  "68001",
	"PEREIRA":      "66001",
	"MANIZALES":    "17001",
	"CUCUTA":       "54001", "CÚCUTA": "54001",
	"IBAGUE": "73001", "IBAGUÉ": "73001",
	"VILLAVICENCIO": "50001",
	"PASTO":         "52001", "SAN JUAN DE PASTO": "52001",
	"MONTERIA": "23001", "MONTERÍA": "23001",
	"NEIVA":      "41001",
	"ARMENIA":    "63001",
	"VALLEDUPAR": "20001",
	"POPAYAN":    "19001", "POPAYÁN": "19001",
	"SINCELEJO": "70001",
	"TUNJA":     "15001",
	"RIOHACHA":  "44001",
	"QUIBDO":    "27001", "QUIBDÓ": "27001",
	"FLORENCIA": "18001",
	"YOPAL":     "85001",
	"MOCOA":     "86001",
	"LETICIA":   "91001",
	"ARAUCA":    "81001",
	"INIRIDA":   "94001", "INÍRIDA": "94001",
	"MITU": "97001", "MITÚ": "97001",
	"PUERTO CARRENO": "99001", "PUERTO CARREÑO": "99001",
	"SAN JOSE DEL GUAVIARE": "95001", "SAN JOSÉ DEL GUAVIARE": "95001",

	// Tourist destinations
	"SAN ANDRES": "88001", "SAN ANDRÉS": "88001", "SAN ANDRES ISLA": "88001",
	"PROVIDENCIA": "88564",
	"BUGA":         "76111", "GUADALAJARA DE BUGA": "76111",
	"BUENAVENTURA":  "76109",
	"BARICHARA":     "68079",
	"VILLA DE LEYVA": "15407",
	"GUATAPE":       "5321", "GUATAPÉ": "5321",
	"JARDIN": "5364", "JARDÍN": "5364",
	"SALENTO":  "63690",
	"FILANDIA": "63272",
	"SANTA FE DE ANTIOQUIA": "5042", "SANTAFE DE ANTIOQUIA": "5042",
	"RIONEGRO": "5615",
	"ENVIGADO": "5266",
	"ITAGUI":   "5360", "ITAGÜÍ": "5360",
	"BELLO":     "5088",
	"SABANETA":  "5631",
	"LA CEJA":   "5376",
	"MARINILLA": "5440",
	"EL RETIRO": "5607", "RETIRO": "5607",
	"GIRARDOTA":  "5308",
	"COPACABANA": "5212",
	"ZIPAQUIRA":  "25899", "ZIPAQUIRÁ": "25899",
	"CHIA": "25175", "CHÍA": "25175",
	"CAJICA": "25126", "CAJICÁ": "25126",
	"SOACHA":   "25754",
	"GIRARDOT": "25307",
	"MELGAR":   "73449",
	"VILLETA":  "25873",
	"LA MESA":  "25386",
	"FUSAGASUGA": "25290", "FUSAGASUGÁ": "25290",
	"PALMIRA": "76520",
	"TULUA":   "76834", "TULUÁ": "76834",
	"CARTAGO": "76147",
	"JAMUNDI": "76364", "JAMUNDÍ": "76364",
	"YUMBO":    "76892",
	"SOLEDAD":  "8758",
	"MALAMBO":  "8433",
	"TURBACO":  "13836",
	"MAGANGUE": "13430", "MAGANGUÉ": "13430",
	"LORICA": "23417",
	"CERETE": "23162", "CERETÉ": "23162",
	"SOGAMOSO": "15759",
	"DUITAMA":  "15238",
	"PAIPA":    "15516",
	"IPIALES":  "52356",
	"TUMACO":   "52835",

	// "COLOMBIA" itself is accepted as a domestic destination.
	"COLOMBIA": "169",
}

var cityKeys = sortedKeys(colombianCities)

// IsColombianCity reports whether the text names a Colombian city, along with
// the city's DANE code. Substring matching only runs on inputs of at least 5
// characters so short tokens like country abbreviations cannot match inside
// longer city names (e.g. "USA" in "FUSAGASUGA").
func IsColombianCity(text string) (bool, string) {
	normalized := normalizeLookupKey(text)
	if normalized == "" {
		return false, ""
	}

	if code, ok := colombianCities[normalized]; ok {
		return true, code
	}

	if utf8.RuneCountInString(normalized) >= 5 {
		for _, city := range cityKeys {
			if strings.Contains(normalized, city) {
				return true, colombianCities[city]
			}
		}
	}

	return false, ""
}

// ColombiaCodeIfCity resolves a destination that is actually a domestic city
// to the Colombia country code at HIGH confidence. Non-city text yields NONE.
func ColombiaCodeIfCity(text string) (string, Confidence) {
	if ok, _ := IsColombianCity(text); ok {
		return ColombiaCode, ConfidenceHigh
	}
	return "", ConfidenceNone
}
