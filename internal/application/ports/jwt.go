package ports

type Auth interface {
	GenerateToken(requestPassword string) (string, error)
}
