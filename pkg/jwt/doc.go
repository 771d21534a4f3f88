// Package jwt signs and verifies HS256 JSON Web Tokens on top of
// github.com/golang-jwt/jwt/v5.
//
// A Service owns one symmetric signing key. The key is validated once at
// construction, so a missing or weak secret surfaces as a startup error
// rather than on the first request:
//
//	svc, err := jwt.New([]byte(cfg.SigningKey))
//	if err != nil {
//	    // configuration fault: refuse to start
//	}
//	token, _ := svc.Generate(gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(exp)})
//	var claims gojwt.RegisteredClaims
//	err = svc.Parse(token, &claims)
//
// Only HS256 is accepted on parse to rule out algorithm confusion.
package jwt
