package core

type AuthMessage struct {
	Username string
	Password string
}

type UserRecord struct {
	ID       uint
	Username string
}

type StudentMessage struct {
	Name  string
	Age   int
	Grade string
}

type StudentRecord struct {
	ID    uint
	Name  string
	Age   int
	Grade string
}
