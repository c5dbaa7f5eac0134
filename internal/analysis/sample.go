package analysis

// SampleJD is a reference job description that exercises every skill
// category and exceeds the long-JD threshold. Useful for demos and for
// verifying extraction end to end.
const SampleJD = `We are looking for a Software Development Engineer who is passionate about building scalable systems.

Requirements:
- Strong foundation in DSA and problem-solving. Comfortable with arrays, trees, graphs, and dynamic programming.
- Proficiency in at least one of: Java, Python, or JavaScript. We use Java and Python on the backend.
- Experience with React for frontend development. Knowledge of state management and component design.
- Backend: Node.js and Express. Understanding of REST APIs and async programming.
- Databases: SQL (PostgreSQL, MySQL) for relational data; MongoDB for document storage.
- Nice to have: AWS (EC2, S3), Docker for containerization, CI/CD pipelines.
- Testing: Selenium or similar for E2E tests. Unit tests with JUnit/PyTest.

You will work on our core platform, collaborate with product and design, and ship features that impact millions of users. Strong communication skills and ability to work in a fast-paced environment are essential.

We value curiosity, ownership, and a growth mindset. If you love clean code and continuous learning, we would like to hear from you.`
