package appcontext

// Env tells the fx graph which process shape it is assembling. The worker
// sweep runs in-process with the server, but a worker-only deployment keeps
// the HTTP surface out of the graph.
const (
	EnvServer Env = iota
	EnvWorker
)

type Env int

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvWorker:
		return "worker"
	}
	return "unknown"
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
