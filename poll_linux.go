package termui

import "golang.org/x/sys/unix"

// PollCallback is invoked with the readiness mask reported for fd.
type PollCallback func(p *Poll, fd int, events uint32)

type pollEntry struct {
	fd int
	cb PollCallback
}

// Poll is a level-triggered I/O multiplexer over epoll (§4.7). It owns no
// signal or terminal knowledge; MainLoop layers that on top, matching the
// source's separation between csys.h's terminal-agnostic Poll and
// termui.h's TermUi.
type Poll struct {
	epollFd   int
	monitored map[int]pollEntry
}

// NewPoll creates the underlying epoll instance.
func NewPoll() (*Poll, error) {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, newSyscallError("epoll_create1", err)
	}
	return &Poll{epollFd: fd, monitored: make(map[int]pollEntry)}, nil
}

// Add registers fd with the desired readiness mask. Duplicate registration
// fails; a kernel-level failure rolls back the bookkeeping entry.
func (p *Poll) Add(fd int, events uint32, cb PollCallback) error {
	if fd < 0 {
		return newSyscallErrorf("epoll_ctl", "invalid fd", unix.EBADF)
	}
	if _, exists := p.monitored[fd]; exists {
		return newSyscallErrorf("epoll_ctl", "fd already registered", unix.EEXIST)
	}
	p.monitored[fd] = pollEntry{fd: fd, cb: cb}
	ev := unix.EpollEvent{Events: events, Fd: int32(fd)}
	if err := unix.EpollCtl(p.epollFd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		delete(p.monitored, fd)
		return newSyscallError("epoll_ctl(EPOLL_CTL_ADD)", err)
	}
	return nil
}

// Remove deregisters fd and drops its callback.
func (p *Poll) Remove(fd int) error {
	delete(p.monitored, fd)
	if err := unix.EpollCtl(p.epollFd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return newSyscallError("epoll_ctl(EPOLL_CTL_DEL)", err)
	}
	return nil
}

// WaitAndDispatch blocks up to timeoutMs (-1 forever) for up to maxEvents
// ready descriptors, dispatching each to its registered callback. EINTR is
// absorbed as zero events dispatched.
func (p *Poll) WaitAndDispatch(timeoutMs, maxEvents int) error {
	events := make([]unix.EpollEvent, maxEvents)
	n, err := unix.EpollWait(p.epollFd, events, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return nil
		}
		return newSyscallError("epoll_wait", err)
	}
	for i := 0; i < n; i++ {
		fd := int(events[i].Fd)
		if entry, ok := p.monitored[fd]; ok && entry.cb != nil {
			entry.cb(p, fd, events[i].Events)
		}
	}
	return nil
}

func (p *Poll) Close() error {
	return unix.Close(p.epollFd)
}
