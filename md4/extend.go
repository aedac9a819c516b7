package md4

// Extend forges the checksum of m || glue || extra, given only sum = Sum(m)
// and origLen = len(m). glue is the padding MD4 applied to m.
func Extend(sum [Size]byte, origLen uint64, extra []byte) (forged [Size]byte, glue []byte) {
	glue = Padding(origLen)
	prefixLen := origLen + uint64(len(glue))
	return SumFrom(FromSum(sum), prefixLen, extra), glue
}
