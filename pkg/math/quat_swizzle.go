package math

// Quaternion swizzles reorder x, y, z and w.

func (q Quat[T]) XYZW() Quat[T] { return Quat[T]{q.X, q.Y, q.Z, q.W} }
func (q Quat[T]) XYWZ() Quat[T] { return Quat[T]{q.X, q.Y, q.W, q.Z} }
func (q Quat[T]) XZYW() Quat[T] { return Quat[T]{q.X, q.Z, q.Y, q.W} }
func (q Quat[T]) XZWY() Quat[T] { return Quat[T]{q.X, q.Z, q.W, q.Y} }
func (q Quat[T]) XWYZ() Quat[T] { return Quat[T]{q.X, q.W, q.Y, q.Z} }
func (q Quat[T]) XWZY() Quat[T] { return Quat[T]{q.X, q.W, q.Z, q.Y} }
func (q Quat[T]) YXZW() Quat[T] { return Quat[T]{q.Y, q.X, q.Z, q.W} }
func (q Quat[T]) YXWZ() Quat[T] { return Quat[T]{q.Y, q.X, q.W, q.Z} }
func (q Quat[T]) YZXW() Quat[T] { return Quat[T]{q.Y, q.Z, q.X, q.W} }
func (q Quat[T]) YZWX() Quat[T] { return Quat[T]{q.Y, q.Z, q.W, q.X} }
func (q Quat[T]) YWXZ() Quat[T] { return Quat[T]{q.Y, q.W, q.X, q.Z} }
func (q Quat[T]) YWZX() Quat[T] { return Quat[T]{q.Y, q.W, q.Z, q.X} }
func (q Quat[T]) ZXYW() Quat[T] { return Quat[T]{q.Z, q.X, q.Y, q.W} }
func (q Quat[T]) ZXWY() Quat[T] { return Quat[T]{q.Z, q.X, q.W, q.Y} }
func (q Quat[T]) ZYXW() Quat[T] { return Quat[T]{q.Z, q.Y, q.X, q.W} }
func (q Quat[T]) ZYWX() Quat[T] { return Quat[T]{q.Z, q.Y, q.W, q.X} }
func (q Quat[T]) ZWXY() Quat[T] { return Quat[T]{q.Z, q.W, q.X, q.Y} }
func (q Quat[T]) ZWYX() Quat[T] { return Quat[T]{q.Z, q.W, q.Y, q.X} }
func (q Quat[T]) WXYZ() Quat[T] { return Quat[T]{q.W, q.X, q.Y, q.Z} }
func (q Quat[T]) WXZY() Quat[T] { return Quat[T]{q.W, q.X, q.Z, q.Y} }
func (q Quat[T]) WYXZ() Quat[T] { return Quat[T]{q.W, q.Y, q.X, q.Z} }
func (q Quat[T]) WYZX() Quat[T] { return Quat[T]{q.W, q.Y, q.Z, q.X} }
func (q Quat[T]) WZXY() Quat[T] { return Quat[T]{q.W, q.Z, q.X, q.Y} }
func (q Quat[T]) WZYX() Quat[T] { return Quat[T]{q.W, q.Z, q.Y, q.X} }
