package DG1D

// Limiter modifies U in place after each Runge-Kutta stage
type Limiter interface {
	Limit(U *State, dx float64) error
}

var (
	rkA = [3]float64{0, 3. / 4., 1. / 3.}
)

// SSPRK3 is the three stage, third order strong stability preserving scheme
//
//	U1 = a*U0 + (1-a)*(U1 - dt/dx * Res(U1)),   a = 0, 3/4, 1/3
type SSPRK3 struct {
	Assembler *Assembler
	Limiter   Limiter
	U0, Res   *State
}

func NewSSPRK3(a *Assembler, lim Limiter) *SSPRK3 {
	var (
		K, Np = a.Mesh.K, a.Tables.Np
	)
	return &SSPRK3{
		Assembler: a,
		Limiter:   lim,
		U0:        NewState(K, Np),
		Res:       NewState(K, Np),
	}
}

// Step advances U by dt in place
func (rk *SSPRK3) Step(U *State, dt float64) (err error) {
	var (
		dx  = rk.Assembler.Mesh.Dx
		lam = dt / dx
	)
	rk.U0.CopyFrom(U)
	for stage := 0; stage < 3; stage++ {
		if err = rk.Assembler.Assemble(U, rk.Res); err != nil {
			return
		}
		a := rkA[stage]
		b := 1 - a
		for n := 0; n < NumFields; n++ {
			var (
				u0 = rk.U0.Data(Field(n))
				u1 = U.Data(Field(n))
				r  = rk.Res.Data(Field(n))
			)
			for i := range u1 {
				u1[i] = a*u0[i] + b*(u1[i]-lam*r[i])
			}
		}
		if rk.Limiter != nil {
			if err = rk.Limiter.Limit(U, dx); err != nil {
				return
			}
		}
	}
	return
}
