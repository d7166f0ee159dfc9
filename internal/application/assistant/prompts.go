package assistant

import "strings"

// VisionInstruction instrucción fija del paso 1 (descripción del estilo de la habitación).
// El texto se conserva tal como lo recibe el modelo en producción, incluida la errata.
const VisionInstruction = "You are a professional interior designer, give me a detailed decsription of the style of the room in this image"

// BuildDesignPrompt arma el prompt del paso 2: rol, descripción de la habitación,
// catálogo completo, petición del cliente ya decodificada e instrucciones de formato
// que terminan con la lista de IDs entre corchetes.
func BuildDesignPrompt(description, catalogText, customerMessage string) string {
	var b strings.Builder
	b.WriteString(" You are an interior designer that works for Online Boutique. You are tasked with providing recommendations to a customer on what they should add to a given room from our catalog. This is the description of the room: \n")
	b.WriteString(description)
	b.WriteString(" Here are a list of products that are relevant to it: ")
	b.WriteString(catalogText)
	b.WriteString(" Specifically, this is what the customer has asked for, see if you can accommodate it: ")
	b.WriteString(customerMessage)
	b.WriteString(" Start by repeating a brief description of the room's design to the customer, then provide your recommendations. Do your best to pick the most relevant item out of the list of products provided, but if none of them seem relevant, then say that instead of inventing a new product. At the end of the response, add a list of the IDs of the relevant products in the following format for the top 3 results: [<first product ID>], [<second product ID>], [<third product ID>] ")
	return b.String()
}

// DecodeMessage revierte la codificación con porcentajes del mensaje del cliente.
// Las secuencias mal formadas ("100%", "%zz") se dejan tal cual y '+' no se
// convierte en espacio. Los bytes que no forman UTF-8 válido se reemplazan por U+FFFD.
func DecodeMessage(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				buf = append(buf, hi<<4|lo)
				i += 2
				continue
			}
		}
		buf = append(buf, s[i])
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
