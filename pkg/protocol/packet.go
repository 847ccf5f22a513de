// Legacy BSD syslog datagram assembly (RFC 3164-style <PRI> framing)
package protocol

import "strconv"

// Computes the combined wire priority from facility and severity codes.
// Raw integers are accepted without range validation so callers can use
// non-standard local facilities by number.
func Priority(facility int, severity int) (priority int) {
	priority = (facility << 3) | severity
	return
}

// Assembles a textual syslog datagram.
// The priority is rendered in decimal with no padding and no clamping.
// The message passes through verbatim, embedded newlines included.
func BuildPacket(priority int, tag string, message string) (packet []byte) {
	packet = []byte("<" + strconv.Itoa(priority) + ">" + tag + ": " + message + "\n")
	return
}

// Assembles a syslog datagram around a raw byte body.
// Framing bytes are concatenated around the body with no text
// reinterpretation, output is byte-identical to BuildPacket for
// equivalent content.
func BuildRawPacket(priority int, tag string, body []byte) (packet []byte) {
	packet = make([]byte, 0, len(tag)+len(body)+16)
	packet = append(packet, '<')
	packet = strconv.AppendInt(packet, int64(priority), 10)
	packet = append(packet, '>')
	packet = append(packet, tag...)
	packet = append(packet, ':', ' ')
	packet = append(packet, body...)
	packet = append(packet, '\n')
	return
}
