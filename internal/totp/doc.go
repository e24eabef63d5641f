// Package totp computes time-based one-time passwords (RFC 6238 over
// RFC 4226) with the fixed parameters every stored item uses: HMAC-SHA1,
// 6 digits and a 30-second step with counter = floor(unix / 30).
//
// Display callers use [GenerateCode], which never fails and returns the
// [ErrorCode] sentinel instead. Code that needs the reason uses [Code].
package totp
