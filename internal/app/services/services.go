package services

// Services defined in this package:
// - AuthService: client sessions, login, logout and per-client settings
// - ViewService: the role-scoped screens of an authenticated session
