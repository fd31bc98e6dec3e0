package termui

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MainLoop layers signal delivery and cross-thread termination onto a Poll
// (§4.7, §5). Only WaitAndDispatch may block; RequestTermination is the one
// operation safe to call from a signal handler or another goroutine.
type MainLoop struct {
	*Poll

	opts Options

	wakeupFd int
	signalFd int

	signalCallbacks map[int]func(signo int)

	exitRequested atomic.Bool
	exitStatus    atomic.Int32
}

// NewMainLoop creates the epoll instance and its wakeup eventfd.
func NewMainLoop(opts Options) (*MainLoop, error) {
	opts = opts.withDefaults()

	poll, err := NewPoll()
	if err != nil {
		return nil, err
	}

	wakeupFd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		poll.Close()
		return nil, newSyscallError("eventfd", err)
	}

	ml := &MainLoop{
		Poll:            poll,
		opts:            opts,
		wakeupFd:        wakeupFd,
		signalFd:        -1,
		signalCallbacks: make(map[int]func(int)),
	}
	if err := poll.Add(wakeupFd, unix.EPOLLIN, ml.handleWakeup); err != nil {
		unix.Close(wakeupFd)
		poll.Close()
		return nil, err
	}
	return ml, nil
}

func (ml *MainLoop) handleWakeup(_ *Poll, fd int, events uint32) {
	if events&unix.EPOLLERR != 0 {
		panic("termui: EPOLLERR on wakeup eventfd")
	}
	var buf [8]byte
	unix.Read(fd, buf[:])
}

// SetSignals blocks the given signals in this thread and routes their
// delivery through a signalfd registered with the loop. It must be called
// before any goroutine that should keep receiving the signal via its
// default disposition is spawned, matching the source's requirement that
// signal masking happen on the main thread before pthread_create.
func (ml *MainLoop) SetSignals(signals ...int) error {
	var set unix.Sigset_t
	for _, s := range signals {
		sigsetAdd(&set, s)
	}
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, &set, nil); err != nil {
		return newSyscallError("pthread_sigmask", err)
	}
	fd, err := unix.Signalfd(-1, &set, unix.SFD_NONBLOCK|unix.SFD_CLOEXEC)
	if err != nil {
		return newSyscallError("signalfd", err)
	}
	ml.signalFd = fd
	ml.opts.Logger.Debug("signalfd registered", "fd", fd, "nsignals", len(signals))
	return ml.Add(fd, unix.EPOLLIN, ml.handleSignal)
}

// RegisterSignalHandler installs cb to run when signo is delivered. signo
// must be part of a set previously passed to SetSignals. A signal with no
// registered handler requests termination with the signal number as exit
// status, matching the source's default disposition for unhandled signals
// routed through the loop.
func (ml *MainLoop) RegisterSignalHandler(signo int, cb func(signo int)) {
	ml.signalCallbacks[signo] = cb
}

func (ml *MainLoop) handleSignal(_ *Poll, fd int, events uint32) {
	if events&unix.EPOLLERR != 0 {
		panic("termui: EPOLLERR on signal fd")
	}
	var info unix.SignalfdSiginfo
	buf := (*[unsafe.Sizeof(info)]byte)(unsafe.Pointer(&info))[:]
	n, err := unix.Read(fd, buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return
		}
		panic(fmt.Sprintf("termui: read(signalfd) failed: %v", err))
	}
	if n != len(buf) {
		panic(fmt.Sprintf("termui: short read on signalfd: got %d want %d", n, len(buf)))
	}

	signo := int(info.Signo)
	ml.opts.Logger.Debug("signal received", "signo", signo)
	if cb, ok := ml.signalCallbacks[signo]; ok {
		cb(signo)
	} else {
		ml.opts.Logger.Info("terminating on unhandled signal", "signo", signo)
		ml.RequestTermination(signo)
	}
}

// RequestTermination marks the loop for exit with the given status and
// wakes RunForever if it is blocked in epoll_wait. Safe to call from a
// signal callback or from another goroutine; the wakeup is a single
// eventfd write, the only cross-thread-safe operation the loop offers.
func (ml *MainLoop) RequestTermination(status int) {
	if ml.exitRequested.CompareAndSwap(false, true) {
		ml.exitStatus.Store(int32(status))
		ml.opts.Logger.Debug("termination requested", "status", status)
	}
	one := uint64(1)
	buf := (*[8]byte)(unsafe.Pointer(&one))[:]
	unix.Write(ml.wakeupFd, buf)
}

// RunForever dispatches ready descriptors until RequestTermination has been
// called, then returns the requested exit status.
func (ml *MainLoop) RunForever() int {
	for !ml.exitRequested.Load() {
		if err := ml.WaitAndDispatch(-1, ml.opts.MaxSimultaneousEvents); err != nil {
			panic(err)
		}
	}
	return int(ml.exitStatus.Load())
}

// Close releases the wakeup eventfd, the signalfd if set up, and the
// underlying epoll instance.
func (ml *MainLoop) Close() error {
	unix.Close(ml.wakeupFd)
	if ml.signalFd >= 0 {
		unix.Close(ml.signalFd)
	}
	return ml.Poll.Close()
}

func sigsetAdd(set *unix.Sigset_t, sig int) {
	idx := sig - 1
	set.Val[idx/64] |= 1 << (uint(idx) % 64)
}
